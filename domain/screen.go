package domain

import (
	"fmt"

	"cinema_rooms/constants"
)

// ScreenType is the projection capability of a room's screen.
type ScreenType string

const (
	Screen2D   ScreenType = "2D"
	Screen3D   ScreenType = "3D"
	Screen2D3D ScreenType = "2D_3D"
)

const (
	minScreenSize = 10
	maxScreenSize = 50
)

// Screen is the projection surface of a room: size in meters plus type.
type Screen struct {
	Size int        `json:"size"`
	Type ScreenType `json:"type"`
}

// NewScreen validates screen size and type.
func NewScreen(size int, screenType string) (Screen, Failures) {
	var failures Failures
	if size < minScreenSize || size > maxScreenSize {
		failures = append(failures, Failure{
			Code: constants.INVALID_SCREEN_SIZE,
			Details: map[string]any{
				"actual": size, "min": minScreenSize, "max": maxScreenSize,
			},
		})
	}
	switch ScreenType(screenType) {
	case Screen2D, Screen3D, Screen2D3D:
	default:
		failures = append(failures, Failure{
			Code:    constants.INVALID_SCREEN_TYPE,
			Details: map[string]any{"actual": screenType},
		})
	}
	if len(failures) > 0 {
		return Screen{}, failures
	}
	return Screen{Size: size, Type: ScreenType(screenType)}, nil
}

// HydrateScreen rebuilds a screen from trusted storage.
func HydrateScreen(size int, screenType string) Screen {
	if screenType == "" || size == 0 {
		panic(fmt.Sprintf("domain: hydrating screen with missing data (size=%d type=%q)", size, screenType))
	}
	return Screen{Size: size, Type: ScreenType(screenType)}
}
