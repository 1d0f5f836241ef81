// Package i18n translates command replies.
package i18n

import (
	"embed"
	"encoding/json"
	"fmt"
	"strings"

	goi18n "github.com/nicksnyder/go-i18n/v2/i18n"
	"github.com/rs/zerolog/log"
	"golang.org/x/text/language"
)

// Message IDs.
const (
	MsgHelp               = "Help"
	MsgUnknownCommand     = "UnknownCommand"
	MsgUsage              = "Usage"
	MsgPermissionDenied   = "PermissionDenied"
	MsgInvalidDate        = "InvalidDate"
	MsgUserNotFound       = "UserNotFound"
	MsgAmbiguousUser      = "AmbiguousUser"
	MsgNoDateSpecified    = "NoDateSpecified"
	MsgBirthdaySaved      = "BirthdaySaved"
	MsgBirthdayRemoved    = "BirthdayRemoved"
	MsgFwdSaved           = "FwdSaved"
	MsgFwdRemoved         = "FwdRemoved"
	MsgNoBirthdaysOnDate  = "NoBirthdaysOnDate"
	MsgNoFwdOnDate        = "NoFwdOnDate"
	MsgNoResults          = "NoResults"
	MsgNotBirthdayChannel = "NotBirthdayChannel"
	MsgPitchingInRecorded = "PitchingInRecorded"
	MsgInternalError      = "InternalError"
)

//go:embed locales/*.json
var localeFS embed.FS

// Translator renders messages in one language, falling back to English.
type Translator struct {
	localizer *goi18n.Localizer
}

// NewBundle loads every locales/active.<lang>.json file.
func NewBundle() (*goi18n.Bundle, error) {
	bundle := goi18n.NewBundle(language.English)
	bundle.RegisterUnmarshalFunc("json", json.Unmarshal)

	entries, err := localeFS.ReadDir("locales")
	if err != nil {
		return nil, fmt.Errorf("failed to read locales: %w", err)
	}

	for _, entry := range entries {
		name := entry.Name()
		if !strings.HasPrefix(name, "active.") || !strings.HasSuffix(name, ".json") {
			continue
		}

		if _, err := bundle.LoadMessageFileFS(localeFS, "locales/"+name); err != nil {
			return nil, fmt.Errorf("failed to load locale %s: %w", name, err)
		}
	}

	return bundle, nil
}

// New returns a Translator for lang, e.g. "en" or "ru".
func New(lang string) (*Translator, error) {
	bundle, err := NewBundle()
	if err != nil {
		return nil, err
	}

	return &Translator{localizer: goi18n.NewLocalizer(bundle, lang, language.English.String())}, nil
}

// T translates id. A missing message yields id itself.
func (t *Translator) T(id string, data map[string]interface{}) string {
	msg, err := t.localizer.Localize(&goi18n.LocalizeConfig{
		MessageID:    id,
		TemplateData: data,
	})
	if err != nil {
		log.Debug().Err(err).Str("message_id", id).Msg("translation missing")
		return id
	}
	return msg
}
