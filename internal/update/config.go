package update

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/sandeepkv93/tasklist/internal/storage"
	"github.com/sandeepkv93/tasklist/internal/store"
)

type RuntimeConfig struct {
	DesktopNotifications bool
	ToastDuration        time.Duration
	IDPolicy             store.IDPolicy
	SavedState           storage.Kind
	DebugLogPath         string
}

func DefaultRuntimeConfig() RuntimeConfig {
	return RuntimeConfig{
		DesktopNotifications: false,
		ToastDuration:        3 * time.Second,
		IDPolicy:             store.IDPolicyMaxPlusOne,
		SavedState:           storage.KindMemory,
	}
}

func RuntimeConfigFromEnv(base RuntimeConfig) RuntimeConfig {
	cfg := base
	if v, ok := getEnvBool("TASKLIST_DESKTOP_NOTIFICATIONS"); ok {
		cfg.DesktopNotifications = v
	}
	if v, ok := getEnvInt("TASKLIST_TOAST_SECONDS"); ok && v > 0 {
		cfg.ToastDuration = time.Duration(v) * time.Second
	}
	if v := store.IDPolicy(getEnvLower("TASKLIST_ID_POLICY")); v.IsValid() {
		cfg.IDPolicy = v
	}
	if v := storage.Kind(getEnvLower("TASKLIST_SAVED_STATE")); v.IsValid() {
		cfg.SavedState = v
	}
	if v := strings.TrimSpace(os.Getenv("TASKLIST_DEBUG_LOG")); v != "" {
		cfg.DebugLogPath = v
	}
	return cfg
}

func getEnvLower(name string) string {
	return strings.TrimSpace(strings.ToLower(os.Getenv(name)))
}

func getEnvInt(name string) (int, bool) {
	raw := strings.TrimSpace(os.Getenv(name))
	if raw == "" {
		return 0, false
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, false
	}
	return v, true
}

func getEnvBool(name string) (bool, bool) {
	raw := getEnvLower(name)
	if raw == "" {
		return false, false
	}
	switch raw {
	case "1", "true", "yes", "y", "on":
		return true, true
	case "0", "false", "no", "n", "off":
		return false, true
	default:
		return false, false
	}
}
