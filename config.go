package pinchzoom

import (
	"fmt"

	"github.com/spf13/viper"
	"go.uber.org/zap"
)

// Config holds the author-time zoom settings. Invalid values are reported by
// Warnings but never rejected; the engine clamps with whatever bounds are
// configured.
type Config struct {
	// PinchSensitivity converts a distance delta in pixels into a scale delta.
	PinchSensitivity float64 `json:"pinch_sensitivity" mapstructure:"pinch_sensitivity"`
	// ScrollSensitivity converts a wheel offset into a scale delta.
	ScrollSensitivity float64 `json:"scroll_sensitivity" mapstructure:"scroll_sensitivity"`
	// MaxZoomSpeed caps the scale change applied in one frame.
	MaxZoomSpeed float64 `json:"max_zoom_speed" mapstructure:"max_zoom_speed"`
	// Deceleration is the fraction of zoom velocity kept each frame, in [0, 1).
	Deceleration float64 `json:"deceleration" mapstructure:"deceleration"`
	// LowerScale and UpperScale bound the content scale per axis.
	LowerScale Vec3 `json:"lower_scale" mapstructure:"lower_scale"`
	UpperScale Vec3 `json:"upper_scale" mapstructure:"upper_scale"`
	// LockPinchCenter anchors the whole pinch at its starting midpoint instead
	// of following the live midpoint.
	LockPinchCenter bool `json:"lock_pinch_center" mapstructure:"lock_pinch_center"`
	// ResetOnEnable restores the initial content state whenever the engine is
	// enabled.
	ResetOnEnable bool `json:"reset_on_enable" mapstructure:"reset_on_enable"`
}

// DefaultConfig returns the stock settings.
func DefaultConfig() Config {
	return Config{
		PinchSensitivity:  0.01,
		ScrollSensitivity: 1,
		MaxZoomSpeed:      0.2,
		Deceleration:      0.8,
		LowerScale:        Vec3One,
		UpperScale:        Splat3(2),
		LockPinchCenter:   true,
		ResetOnEnable:     true,
	}
}

// Warnings lists configuration problems. An empty result means the config is
// valid.
func (c Config) Warnings() []string {
	var w []string
	if c.LowerScale.X < 1 || c.LowerScale.Y < 1 || c.LowerScale.Z < 1 {
		w = append(w, fmt.Sprintf("lower scale %v cannot be less than 1", c.LowerScale))
	}
	if !c.UpperScale.GreaterEqAll(c.LowerScale) {
		w = append(w, fmt.Sprintf("upper scale %v is below lower scale %v", c.UpperScale, c.LowerScale))
	}
	if c.Deceleration < 0 || c.Deceleration >= 1 {
		w = append(w, fmt.Sprintf("deceleration %v outside [0, 1)", c.Deceleration))
	}
	if c.MaxZoomSpeed <= 0 {
		w = append(w, fmt.Sprintf("max zoom speed %v must be positive", c.MaxZoomSpeed))
	}
	return w
}

// logWarnings reports every warning at Warn level.
func (c Config) logWarnings(log *zap.Logger) {
	for _, w := range c.Warnings() {
		log.Warn("zoom config", zap.String("problem", w))
	}
}

// configKey is the viper key zoom settings are read from.
const configKey = "zoom"

// SetConfigDefaults registers DefaultConfig under the "zoom" key so partial
// config files only override what they name.
func SetConfigDefaults(v *viper.Viper) {
	d := DefaultConfig()
	v.SetDefault(configKey+".pinch_sensitivity", d.PinchSensitivity)
	v.SetDefault(configKey+".scroll_sensitivity", d.ScrollSensitivity)
	v.SetDefault(configKey+".max_zoom_speed", d.MaxZoomSpeed)
	v.SetDefault(configKey+".deceleration", d.Deceleration)
	setVec3Default(v, configKey+".lower_scale", d.LowerScale)
	setVec3Default(v, configKey+".upper_scale", d.UpperScale)
	v.SetDefault(configKey+".lock_pinch_center", d.LockPinchCenter)
	v.SetDefault(configKey+".reset_on_enable", d.ResetOnEnable)
}

func setVec3Default(v *viper.Viper, key string, d Vec3) {
	v.SetDefault(key+".x", d.X)
	v.SetDefault(key+".y", d.Y)
	v.SetDefault(key+".z", d.Z)
}

// LoadConfig reads the "zoom" section of v on top of DefaultConfig.
func LoadConfig(v *viper.Viper) (Config, error) {
	SetConfigDefaults(v)
	cfg := DefaultConfig()
	if err := v.UnmarshalKey(configKey, &cfg); err != nil {
		return Config{}, fmt.Errorf("load zoom config: %w", err)
	}
	return cfg, nil
}
