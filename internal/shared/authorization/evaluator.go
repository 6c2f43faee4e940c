package authorization

// Actor identifies the authenticated user a permission check runs for.
type Actor struct {
	ID   uint
	Role UserRole
}

// OwnedResource is implemented by aggregates that carry an owner.
type OwnedResource interface {
	GetOwnerID() uint
}

// CanViewTicket reports whether the actor may read a ticket created by creatorID.
// End users only see their own tickets; staff see everything.
func CanViewTicket(actor Actor, creatorID uint) bool {
	if actor.Role.IsStaff() {
		return true
	}
	return actor.ID == creatorID
}

// CanUpdateTicket reports whether the actor may modify a ticket created by creatorID.
// Which fields survive the update is decided separately; see CanChangeTicketWorkflow.
func CanUpdateTicket(actor Actor, creatorID uint) bool {
	if actor.Role.IsStaff() {
		return true
	}
	return actor.ID == creatorID
}

// CanChangeTicketWorkflow reports whether the actor may touch status and assignee.
// End users never can; their update payloads are silently stripped of both fields.
func CanChangeTicketWorkflow(actor Actor) bool {
	return actor.Role.IsStaff()
}

// CanDeleteTicket reports whether the actor may delete a ticket created by creatorID.
// Agents may only delete tickets they created themselves; admins may delete any.
func CanDeleteTicket(actor Actor, creatorID uint) bool {
	if actor.Role.IsAdmin() {
		return true
	}
	return actor.ID == creatorID
}

// CanSeeInternalComments reports whether internal comments are visible to the actor.
func CanSeeInternalComments(actor Actor) bool {
	return actor.Role.IsStaff()
}

// CanCreateInternalComment reports whether the actor may post internal comments.
func CanCreateInternalComment(actor Actor) bool {
	return actor.Role.IsStaff()
}

// CanModifyComment reports whether the actor may edit or delete a comment
// authored by authorID.
func CanModifyComment(actor Actor, authorID uint) bool {
	if actor.Role.IsAdmin() {
		return true
	}
	return actor.ID == authorID
}

// CanManageCategories reports whether the actor may create, update, or delete
// categories.
func CanManageCategories(actor Actor) bool {
	return actor.Role.IsAdmin()
}

// CanReviewRoleRequests reports whether the actor may approve or reject role
// requests and list all of them.
func CanReviewRoleRequests(actor Actor) bool {
	return actor.Role.IsAdmin()
}

// CanDeleteRoleRequest reports whether the actor may delete a role request
// owned by ownerID. Requesters may withdraw their own pending requests;
// whether the request is still pending is checked by the usecase.
func CanDeleteRoleRequest(actor Actor, ownerID uint) bool {
	if actor.Role.IsAdmin() {
		return true
	}
	return actor.ID == ownerID
}

// CanManageUsers reports whether the actor may list and delete users.
func CanManageUsers(actor Actor) bool {
	return actor.Role.IsAdmin()
}

// ScopesTicketListToOwn reports whether ticket listings must be restricted
// to the actor's own tickets.
func ScopesTicketListToOwn(actor Actor) bool {
	return !actor.Role.IsStaff()
}

// CanAccessResource reports whether the actor may access an owned resource.
// Admins bypass the ownership check.
func CanAccessResource(actor Actor, resource OwnedResource) bool {
	if actor.Role.IsAdmin() {
		return true
	}
	return actor.ID == resource.GetOwnerID()
}
