package constant

const (
	WINDOW_TITLE  = "sfxr"
	WINDOW_WIDTH  = 640
	WINDOW_HEIGHT = 480
	DEPTH_16      = 16
	DEPTH_32      = 32
	REFRESH_RATE  = 60
	ICON_PATH     = "sfxr.bmp"
	PATH_CAPACITY = 256
	NUM_SCANCODES = 512
)

const (
	AUDIO_FREQ       = 44100
	CHANNELS         = 2
	AUDIO_SAMPLES    = 512
	AUDIO_QUEUE_SIZE = AUDIO_FREQ * CHANNELS * 4 // 4 seconds
)

const (
	COLOR_BACKGROUND = 0xc0b090
	COLOR_BAR        = 0x000000
	COLOR_CURSOR     = 0xf0f0f0
	COLOR_ACTIVE     = 0x988070
)
