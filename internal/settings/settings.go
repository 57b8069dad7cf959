// Package settings owns the process-wide display preferences (language,
// theme) and the optional user-supplied Gemini API key. State is persisted
// through the key-value store, cached in memory, and change events are
// published to subscribers so every open view re-renders consistently. An
// optional relay carries those events over Redis pub/sub so subscribers on
// other instances hear them too.
package settings

import (
	"context"
	"fmt"
	"sync"

	"go.uber.org/zap"

	"github.com/adityawrm/mindbloom-backend/internal/store"
	"github.com/adityawrm/mindbloom-backend/pkg/utils"
)

// Supported values. Exactly two display languages are supported.
const (
	LangEN = "en"
	LangID = "id"

	ThemeLight = "light"
	ThemeDark  = "dark"
	ThemeAuto  = "auto"
)

// Change is one settings mutation, delivered to subscribers. For the API
// key, Value is "configured" or "" rather than the key itself.
type Change struct {
	Setting string `json:"setting"`
	Value   string `json:"value"`
}

// Manager is the central owner of settings state. It is safe for concurrent
// use.
type Manager struct {
	kv            store.KV
	log           *zap.Logger
	encKey        []byte // nil disables at-rest encryption of the API key
	defaultAPIKey string

	mu       sync.RWMutex
	language string
	theme    string
	override string // decrypted user API key, "" when unset

	subMu   sync.Mutex
	subs    map[int]chan Change
	nextSub int
	relay   Relay // nil means single-instance, in-process fan-out only
}

// NewManager creates a Manager with defaults applied. defaultAPIKey is the
// environment-provided Gemini key used when the user has not saved one.
func NewManager(kv store.KV, encKey []byte, defaultAPIKey string, log *zap.Logger) *Manager {
	return &Manager{
		kv:            kv,
		log:           log,
		encKey:        encKey,
		defaultAPIKey: defaultAPIKey,
		language:      LangEN,
		theme:         ThemeAuto,
		subs:          make(map[int]chan Change),
	}
}

// Load warms the in-memory cache from storage. Missing or unreadable values
// fall back to defaults; Load never fails the caller.
func (m *Manager) Load(ctx context.Context) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if lang, found, err := m.kv.Get(ctx, store.KeyLanguage); err != nil {
		m.log.Warn("failed to read stored language", zap.Error(err))
	} else if found && validLanguage(lang) {
		m.language = lang
	}

	if theme, found, err := m.kv.Get(ctx, store.KeyTheme); err != nil {
		m.log.Warn("failed to read stored theme", zap.Error(err))
	} else if found && validTheme(theme) {
		m.theme = theme
	}

	if key, ok := m.readStoredAPIKey(ctx); ok {
		m.override = key
	}
}

// readStoredAPIKey fetches and, when encryption is on, decrypts the saved
// API key. ok is false when nothing usable is stored or the read failed;
// a found-but-cleared key returns ("", true).
func (m *Manager) readStoredAPIKey(ctx context.Context) (string, bool) {
	stored, found, err := m.kv.Get(ctx, store.KeyAPIKey)
	if err != nil {
		m.log.Warn("failed to read stored API key", zap.Error(err))
		return "", false
	}
	if !found {
		return "", true
	}
	key := stored
	if m.encKey != nil {
		key, err = utils.Decrypt(stored, m.encKey)
		if err != nil {
			m.log.Warn("failed to decrypt stored API key, ignoring it", zap.Error(err))
			return "", false
		}
	}
	return key, true
}

// Language returns the active display language.
func (m *Manager) Language() string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.language
}

// Theme returns the active theme preference.
func (m *Manager) Theme() string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.theme
}

// APIKey returns the key used for analysis requests: the user-saved
// override when present, else the environment default.
func (m *Manager) APIKey() string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.override != "" {
		return m.override
	}
	return m.defaultAPIKey
}

// HasOverride reports whether a user-saved API key is in effect.
func (m *Manager) HasOverride() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.override != ""
}

// SetLanguage validates, persists, and broadcasts a language change.
func (m *Manager) SetLanguage(ctx context.Context, lang string) error {
	if !validLanguage(lang) {
		return fmt.Errorf("unsupported language %q", lang)
	}
	m.mu.Lock()
	m.language = lang
	m.mu.Unlock()
	if err := m.kv.Set(ctx, store.KeyLanguage, lang); err != nil {
		m.log.Error("failed to persist language", zap.Error(err))
	}
	m.publish(ctx, Change{Setting: "language", Value: lang})
	return nil
}

// SetTheme validates, persists, and broadcasts a theme change.
func (m *Manager) SetTheme(ctx context.Context, theme string) error {
	if !validTheme(theme) {
		return fmt.Errorf("unsupported theme %q", theme)
	}
	m.mu.Lock()
	m.theme = theme
	m.mu.Unlock()
	if err := m.kv.Set(ctx, store.KeyTheme, theme); err != nil {
		m.log.Error("failed to persist theme", zap.Error(err))
	}
	m.publish(ctx, Change{Setting: "theme", Value: theme})
	return nil
}

// SetAPIKey stores (or, when key is empty, clears) the user API key
// override. The key is encrypted at rest when an encryption key is
// configured.
func (m *Manager) SetAPIKey(ctx context.Context, key string) error {
	m.mu.Lock()
	m.override = key
	m.mu.Unlock()

	if key == "" {
		if err := m.kv.Del(ctx, store.KeyAPIKey); err != nil {
			m.log.Error("failed to clear stored API key", zap.Error(err))
		}
		m.publish(ctx, Change{Setting: "api_key", Value: ""})
		return nil
	}

	stored := key
	if m.encKey != nil {
		enc, err := utils.Encrypt(key, m.encKey)
		if err != nil {
			return fmt.Errorf("failed to encrypt API key: %w", err)
		}
		stored = enc
	}
	if err := m.kv.Set(ctx, store.KeyAPIKey, stored); err != nil {
		m.log.Error("failed to persist API key", zap.Error(err))
	}
	m.publish(ctx, Change{Setting: "api_key", Value: "configured"})
	return nil
}

// Subscribe registers a change listener. The returned cancel function must
// be called to release the subscription. Slow subscribers drop events
// rather than blocking publishers.
func (m *Manager) Subscribe() (<-chan Change, func()) {
	m.subMu.Lock()
	defer m.subMu.Unlock()
	id := m.nextSub
	m.nextSub++
	ch := make(chan Change, 8)
	m.subs[id] = ch
	return ch, func() {
		m.subMu.Lock()
		defer m.subMu.Unlock()
		if sub, ok := m.subs[id]; ok {
			delete(m.subs, id)
			close(sub)
		}
	}
}

// StartRelay attaches a cross-instance relay and starts consuming remote
// changes. Once attached, local mutations go through the relay and come
// back on its channel before reaching subscribers, so every instance sees
// the same event stream. The consumer stops when relay.Changes' context
// ends.
func (m *Manager) StartRelay(ctx context.Context, relay Relay) {
	m.subMu.Lock()
	m.relay = relay
	m.subMu.Unlock()

	changes := relay.Changes(ctx)
	go func() {
		for change := range changes {
			m.applyRemote(ctx, change)
			m.fanOut(change)
		}
	}()
}

// applyRemote folds a change made on another instance (or echoed back from
// this one) into the local cache. Applying our own echo is a no-op since
// the state was already set before publishing.
func (m *Manager) applyRemote(ctx context.Context, change Change) {
	switch change.Setting {
	case "language":
		if validLanguage(change.Value) {
			m.mu.Lock()
			m.language = change.Value
			m.mu.Unlock()
		}
	case "theme":
		if validTheme(change.Value) {
			m.mu.Lock()
			m.theme = change.Value
			m.mu.Unlock()
		}
	case "api_key":
		// The key itself never travels over the relay; re-read it from
		// shared storage.
		if key, ok := m.readStoredAPIKey(ctx); ok {
			m.mu.Lock()
			m.override = key
			m.mu.Unlock()
		}
	}
}

func (m *Manager) publish(ctx context.Context, change Change) {
	m.subMu.Lock()
	relay := m.relay
	m.subMu.Unlock()

	if relay != nil {
		err := relay.Publish(ctx, change)
		if err == nil {
			// Subscribers hear about it when the relay echoes it back.
			return
		}
		m.log.Warn("failed to relay settings change, falling back to local fan-out",
			zap.String("setting", change.Setting), zap.Error(err))
	}
	m.fanOut(change)
}

func (m *Manager) fanOut(change Change) {
	m.subMu.Lock()
	defer m.subMu.Unlock()
	for _, ch := range m.subs {
		select {
		case ch <- change:
		default:
		}
	}
}

func validLanguage(lang string) bool {
	return lang == LangEN || lang == LangID
}

func validTheme(theme string) bool {
	return theme == ThemeLight || theme == ThemeDark || theme == ThemeAuto
}
