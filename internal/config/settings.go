package config

import (
	"errors"
	"log"
	"strings"
	"sync/atomic"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/viper"
)

// Settings are the operator-tunable shop settings. They are read from an
// optional shop.yml and can change at runtime without a restart.
type Settings struct {
	ShopName       string `mapstructure:"shopName"`
	CurrencySymbol string `mapstructure:"currencySymbol"`
	ReceiptFooter  string `mapstructure:"receiptFooter"`
}

func DefaultSettings() Settings {
	return Settings{
		ShopName:       "Prototype POS",
		CurrencySymbol: "₹",
		ReceiptFooter:  "Thank you for your business!",
	}
}

// SettingsHolder hands out the current shop settings.
type SettingsHolder struct {
	current atomic.Value // holds Settings
}

// NewSettingsHolder reads shop.yml (if present) and watches it for changes.
func NewSettingsHolder() (*SettingsHolder, error) {
	v := viper.New()

	v.SetConfigName("shop")
	v.SetConfigType("yml")
	v.AddConfigPath("/etc/prototype-pos")
	v.AddConfigPath(".")

	v.SetEnvPrefix("POS")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	defaults := DefaultSettings()
	v.SetDefault("shop.shopName", defaults.ShopName)
	v.SetDefault("shop.currencySymbol", defaults.CurrencySymbol)
	v.SetDefault("shop.receiptFooter", defaults.ReceiptFooter)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}
	}

	var settings Settings
	if err := v.UnmarshalKey("shop", &settings); err != nil {
		return nil, err
	}
	if err := validateSettings(settings); err != nil {
		return nil, err
	}

	holder := &SettingsHolder{}
	holder.current.Store(settings)

	v.WatchConfig()
	v.OnConfigChange(func(e fsnotify.Event) {
		var updated Settings
		if err := v.UnmarshalKey("shop", &updated); err != nil {
			log.Printf("[shop-config] reload failed: %v", err)
			return
		}
		if err := validateSettings(updated); err != nil {
			log.Printf("[shop-config] invalid config ignored: %v", err)
			return
		}
		holder.current.Store(updated)
		log.Printf("[shop-config] reloaded from %s", e.Name)
	})

	return holder, nil
}

// NewStaticSettingsHolder wraps fixed settings without any file watching,
// for tests.
func NewStaticSettingsHolder(s Settings) *SettingsHolder {
	holder := &SettingsHolder{}
	holder.current.Store(s)
	return holder
}

func (h *SettingsHolder) Get() Settings {
	return h.current.Load().(Settings)
}

func validateSettings(s Settings) error {
	if strings.TrimSpace(s.ShopName) == "" {
		return errors.New("shop.shopName cannot be empty")
	}
	if strings.TrimSpace(s.CurrencySymbol) == "" {
		return errors.New("shop.currencySymbol cannot be empty")
	}
	return nil
}
