package ui

// UI-wide constants to avoid magic numbers/strings scattered across the codebase.

// Icons (emojis/symbols)
const (
	IconSettings = "⚙"
	IconEdit     = "✏️"
	IconDelete   = "🗑️"
	IconBack     = "←"
	IconClose    = "×"
	IconSearch   = "🔍"
	IconImage    = "🖼️"
	IconLanguage = "🌐"
)

// Text fragments
const (
	DashPlaceholder = "—"
	GenderMale      = "male"
	GenderFemale    = "female"
	GenderOther     = "other"
)

// Layout sizing (creator cards / lists)
const (
	CardMinWidth   float32 = 360
	CardMinHeight  float32 = 96
	CardImageSize  float32 = 72
	FormMinWidth   float32 = 420
	PreviewPaneMax float32 = 192
)

// Toast notification sizing
const (
	ToastWidth  float32 = 320
	ToastHeight float32 = 64
	ToastMargin float32 = 16
)

// Window sizing
const (
	WindowDefaultWidth  float32 = 900
	WindowDefaultHeight float32 = 640
)
