package rolerequest

import "context"

type RoleRequestRepository interface {
	Save(ctx context.Context, request *RoleRequest) error
	Update(ctx context.Context, request *RoleRequest) error
	Delete(ctx context.Context, requestID uint) error
	GetByID(ctx context.Context, requestID uint) (*RoleRequest, error)
	// GetPendingByUserID returns the user's pending request, or nil when none
	// exists. At most one pending request per user is allowed.
	GetPendingByUserID(ctx context.Context, userID uint) (*RoleRequest, error)
	ListByUserID(ctx context.Context, userID uint) ([]*RoleRequest, error)
	List(ctx context.Context, filter RequestFilter) ([]*RoleRequest, int64, error)
	CountPending(ctx context.Context) (int64, error)
}

type RequestFilter struct {
	Status   *RequestStatus
	Page     int
	PageSize int
}
