// Package category holds the ticket category aggregate. Categories classify
// tickets and can be marked as a user's area of interest.
package category

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"quickdesk/internal/shared/biztime"
)

// DefaultColor is used when a category is created without an explicit color.
const DefaultColor = "#3B82F6"

var hexColorPattern = regexp.MustCompile(`^#[0-9A-Fa-f]{6}$`)

type Category struct {
	id           uint
	name         string
	description  string
	color        string
	isActive     bool
	isPredefined bool
	createdByID  uint
	createdAt    time.Time
	updatedAt    time.Time
}

func NewCategory(
	name string,
	description string,
	color string,
	createdByID uint,
) (*Category, error) {
	name = strings.TrimSpace(name)
	if len(name) == 0 {
		return nil, fmt.Errorf("name is required")
	}
	if len(name) > 50 {
		return nil, fmt.Errorf("name exceeds maximum length of 50 characters")
	}
	if len(description) > 200 {
		return nil, fmt.Errorf("description exceeds maximum length of 200 characters")
	}
	if color == "" {
		color = DefaultColor
	}
	if !hexColorPattern.MatchString(color) {
		return nil, fmt.Errorf("color must be a hex value like #3B82F6")
	}
	if createdByID == 0 {
		return nil, fmt.Errorf("creator ID is required")
	}

	now := biztime.NowUTC()
	return &Category{
		name:        name,
		description: description,
		color:       color,
		isActive:    true,
		createdByID: createdByID,
		createdAt:   now,
		updatedAt:   now,
	}, nil
}

func ReconstructCategory(
	id uint,
	name string,
	description string,
	color string,
	isActive bool,
	isPredefined bool,
	createdByID uint,
	createdAt, updatedAt time.Time,
) (*Category, error) {
	if id == 0 {
		return nil, fmt.Errorf("category ID cannot be zero")
	}
	if len(name) == 0 {
		return nil, fmt.Errorf("name is required")
	}

	return &Category{
		id:           id,
		name:         name,
		description:  description,
		color:        color,
		isActive:     isActive,
		isPredefined: isPredefined,
		createdByID:  createdByID,
		createdAt:    createdAt,
		updatedAt:    updatedAt,
	}, nil
}

func (c *Category) ID() uint {
	return c.id
}

func (c *Category) Name() string {
	return c.name
}

func (c *Category) Description() string {
	return c.description
}

func (c *Category) Color() string {
	return c.color
}

func (c *Category) IsActive() bool {
	return c.isActive
}

func (c *Category) IsPredefined() bool {
	return c.isPredefined
}

func (c *Category) CreatedByID() uint {
	return c.createdByID
}

func (c *Category) CreatedAt() time.Time {
	return c.createdAt
}

func (c *Category) UpdatedAt() time.Time {
	return c.updatedAt
}

func (c *Category) SetID(id uint) error {
	if c.id != 0 {
		return fmt.Errorf("category ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("category ID cannot be zero")
	}
	c.id = id
	return nil
}

// Update changes name, description, and color. Empty arguments keep the
// current value.
func (c *Category) Update(name, description, color string) error {
	if name != "" {
		name = strings.TrimSpace(name)
		if len(name) == 0 {
			return fmt.Errorf("name cannot be blank")
		}
		if len(name) > 50 {
			return fmt.Errorf("name exceeds maximum length of 50 characters")
		}
		c.name = name
	}
	if description != "" {
		if len(description) > 200 {
			return fmt.Errorf("description exceeds maximum length of 200 characters")
		}
		c.description = description
	}
	if color != "" {
		if !hexColorPattern.MatchString(color) {
			return fmt.Errorf("color must be a hex value like #3B82F6")
		}
		c.color = color
	}
	c.updatedAt = biztime.NowUTC()
	return nil
}

func (c *Category) Activate() {
	c.isActive = true
	c.updatedAt = biztime.NowUTC()
}

func (c *Category) Deactivate() {
	c.isActive = false
	c.updatedAt = biztime.NowUTC()
}

// MarkPredefined flags the category as part of the seeded product catalog.
func (c *Category) MarkPredefined() {
	c.isPredefined = true
	c.updatedAt = biztime.NowUTC()
}

// NameEquals compares category names case-insensitively, the same rule the
// uniqueness constraint uses.
func (c *Category) NameEquals(other string) bool {
	return strings.EqualFold(c.name, strings.TrimSpace(other))
}
