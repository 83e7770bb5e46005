package picker

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownPlatform is returned by ParsePlatform for unrecognised names.
var ErrUnknownPlatform = errors.New("unknown platform")

// Platform selects the look and interaction model of the picker.
type Platform int

const (
	// PlatformIOS renders a bottom sheet with a wheel and an accessory toolbar.
	PlatformIOS Platform = iota
	// PlatformAndroid renders a native inline dropdown.
	PlatformAndroid
	// PlatformAndroidHeadless renders host-supplied input content with an
	// overlay dropdown.
	PlatformAndroidHeadless
	// PlatformWeb renders a plain select control.
	PlatformWeb
)

var platformNames = map[Platform]string{
	PlatformIOS:             "ios",
	PlatformAndroid:         "android",
	PlatformAndroidHeadless: "android-headless",
	PlatformWeb:             "web",
}

// String returns the name accepted by ParsePlatform.
func (p Platform) String() string {
	if name, ok := platformNames[p]; ok {
		return name
	}
	return fmt.Sprintf("Platform(%d)", int(p))
}

// ParsePlatform converts a name such as "ios" or "android-headless".
func ParsePlatform(name string) (Platform, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "ios", "":
		return PlatformIOS, nil
	case "android":
		return PlatformAndroid, nil
	case "android-headless", "headless":
		return PlatformAndroidHeadless, nil
	case "web":
		return PlatformWeb, nil
	}
	return 0, fmt.Errorf("%w: %q (want ios, android, android-headless or web)", ErrUnknownPlatform, name)
}

// Platforms lists every platform in display order.
func Platforms() []Platform {
	return []Platform{PlatformIOS, PlatformAndroid, PlatformAndroidHeadless, PlatformWeb}
}

// Variant is the concrete rendering strategy chosen for a platform.
type Variant int

const (
	VariantModal Variant = iota
	VariantNative
	VariantHeadless
	VariantWeb
)

// String returns the variant name used in logs and the CLI.
func (v Variant) String() string {
	switch v {
	case VariantModal:
		return "modal"
	case VariantNative:
		return "native"
	case VariantHeadless:
		return "headless"
	case VariantWeb:
		return "web"
	default:
		return "unknown"
	}
}

// VariantFor picks the rendering strategy. Android falls back to the
// headless variant when the host supplies its own input content or opts out
// of the native style.
func VariantFor(p Platform, customInput bool, useNativeAndroidStyle bool) Variant {
	switch p {
	case PlatformIOS:
		return VariantModal
	case PlatformWeb:
		return VariantWeb
	case PlatformAndroidHeadless:
		return VariantHeadless
	}
	if customInput || !useNativeAndroidStyle {
		return VariantHeadless
	}
	return VariantNative
}
