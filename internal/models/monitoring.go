package models

import (
	"fmt"
	"strings"

	"github.com/desertthunder/smm/internal/shared"
)

// Platform is a social network a monitoring target belongs to.
//
// The zero value means no platform has been selected.
type Platform string

const (
	PlatformInstagram Platform = "instagram"
	PlatformTwitter   Platform = "twitter"
	PlatformFacebook  Platform = "facebook"
)

// Platforms returns the supported platforms in display order.
func Platforms() []Platform {
	return []Platform{PlatformInstagram, PlatformTwitter, PlatformFacebook}
}

// ParsePlatform converts a wire value into a [Platform], ignoring case and surrounding whitespace.
func ParsePlatform(s string) (Platform, error) {
	p := Platform(strings.ToLower(strings.TrimSpace(s)))
	if !p.Valid() {
		return "", fmt.Errorf("%w: unknown platform %q", shared.ErrInvalidArgument, s)
	}
	return p, nil
}

// Valid reports whether p is one of the supported platforms.
func (p Platform) Valid() bool {
	switch p {
	case PlatformInstagram, PlatformTwitter, PlatformFacebook:
		return true
	}
	return false
}

// Label returns the display name shown on the platform's icon.
func (p Platform) Label() string {
	switch p {
	case PlatformInstagram:
		return "Instagram"
	case PlatformTwitter:
		return "Twitter"
	case PlatformFacebook:
		return "Facebook"
	}
	return capitalize(string(p))
}

func (p Platform) String() string { return string(p) }

// EntityType is the kind of profile being monitored.
//
// The zero value means no type has been selected.
type EntityType string

const (
	EntityUser EntityType = "user"
	EntityPage EntityType = "page"
)

// EntityTypes returns the supported entity types in display order.
func EntityTypes() []EntityType {
	return []EntityType{EntityUser, EntityPage}
}

// ParseEntityType converts a wire value into an [EntityType], ignoring case and surrounding whitespace.
func ParseEntityType(s string) (EntityType, error) {
	t := EntityType(strings.ToLower(strings.TrimSpace(s)))
	if !t.Valid() {
		return "", fmt.Errorf("%w: unknown entity type %q", shared.ErrInvalidArgument, s)
	}
	return t, nil
}

// Valid reports whether t is one of the supported entity types.
func (t EntityType) Valid() bool {
	return t == EntityUser || t == EntityPage
}

// Label returns the capitalised name, e.g. "User".
func (t EntityType) Label() string { return capitalize(string(t)) }

func (t EntityType) String() string { return string(t) }

// MonitoringRequest is the body posted to the reporting API.
type MonitoringRequest struct {
	Platform Platform   `json:"platform"`
	URL      string     `json:"url"`
	Type     EntityType `json:"type"`
}

// Validate runs presence checks on every field. URLs are not parsed.
func (r MonitoringRequest) Validate() error {
	switch {
	case r.Platform == "":
		return fmt.Errorf("%w: platform is required", shared.ErrValidation)
	case !r.Platform.Valid():
		return fmt.Errorf("%w: unknown platform %q", shared.ErrValidation, r.Platform)
	case r.Type == "":
		return fmt.Errorf("%w: type is required", shared.ErrValidation)
	case !r.Type.Valid():
		return fmt.Errorf("%w: unknown type %q", shared.ErrValidation, r.Type)
	case strings.TrimSpace(r.URL) == "":
		return fmt.Errorf("%w: url is required", shared.ErrValidation)
	}
	return nil
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
