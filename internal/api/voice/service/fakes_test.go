package voiceService

import (
	"context"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"strings"
	"sync"
	"time"

	"VoiceCommerce/internal/api/voice"
	voiceRepository "VoiceCommerce/internal/api/voice/repository"
	"VoiceCommerce/internal/entity"
	"VoiceCommerce/pkg/audio"
	"VoiceCommerce/pkg/i18n"
	"VoiceCommerce/pkg/redis"

	"github.com/sirupsen/logrus"
)

type fakeTranscriber struct {
	mu       sync.Mutex
	results  map[string]audio.Transcription
	err      error
	hints    []string
	blockFor time.Duration
}

func (f *fakeTranscriber) Name() string { return "fake_stt" }

// Transcribe treats the audio bytes as the spoken text unless a canned
// transcription is registered for them.
func (f *fakeTranscriber) Transcribe(ctx context.Context, data []byte, languageHint string) (audio.Transcription, error) {
	f.mu.Lock()
	f.hints = append(f.hints, languageHint)
	err := f.err
	result, ok := f.results[string(data)]
	f.mu.Unlock()

	if f.blockFor > 0 {
		time.Sleep(f.blockFor)
	}
	if err != nil {
		return audio.Transcription{}, err
	}
	if ok {
		return result, nil
	}
	return audio.Transcription{Text: string(data)}, nil
}

type fakeSynthesizer struct {
	mu    sync.Mutex
	err   error
	calls []string
}

func (f *fakeSynthesizer) Name() string { return "fake_tts" }

func (f *fakeSynthesizer) Synthesize(_ context.Context, text, languageCode, voiceProfileID string) ([]byte, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, languageCode+"|"+voiceProfileID)
	if f.err != nil {
		return nil, f.err
	}
	return []byte("mp3:" + text), nil
}

type fakeBackend struct {
	mu           sync.Mutex
	intents      map[string]string
	err          error
	narration    string
	narrationErr error
	prompts      []string
}

func (f *fakeBackend) Name() string { return "fake_nlu" }

func (f *fakeBackend) Complete(_ context.Context, prompt string) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.prompts = append(f.prompts, prompt)

	if strings.Contains(prompt, "Summarise the result") {
		return f.narration, f.narrationErr
	}
	if f.err != nil {
		return "", f.err
	}

	command := prompt[strings.LastIndex(prompt, "Command: ")+len("Command: "):]
	if raw, ok := f.intents[command]; ok {
		return raw, nil
	}
	return `{"intent":"help","confidence":0.5}`, nil
}

type fakeProducts struct {
	mu        sync.Mutex
	created   []entity.Product
	listed    []entity.Product
	byName    map[string]entity.Product
	average   entity.CategoryPrice
	perf      entity.ProductPerformance
	createErr error
	listErr   error
}

func (f *fakeProducts) CreateProduct(_ context.Context, product entity.Product) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.createErr != nil {
		return f.createErr
	}
	f.created = append(f.created, product)
	return nil
}

func (f *fakeProducts) FindProductsByArtisan(_ context.Context, _ string, limit int) ([]entity.Product, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	if len(f.listed) > limit {
		return f.listed[:limit], nil
	}
	return f.listed, nil
}

func (f *fakeProducts) FindProductByName(_ context.Context, _ string, name string) (entity.Product, error) {
	product, ok := f.byName[strings.ToLower(name)]
	if !ok {
		return entity.Product{}, voice.ErrProductNotFound
	}
	return product, nil
}

func (f *fakeProducts) SumProductPerformance(context.Context, string) (entity.ProductPerformance, error) {
	return f.perf, nil
}

func (f *fakeProducts) AveragePriceByCategory(_ context.Context, _ string, category string) (entity.CategoryPrice, error) {
	if f.average.Category == category {
		return f.average, nil
	}
	return entity.CategoryPrice{Category: category}, nil
}

type fakeArtisans struct {
	metrics entity.ArtisanMetrics
	err     error
}

func (f *fakeArtisans) GetArtisanMetrics(context.Context, string) (entity.ArtisanMetrics, error) {
	return f.metrics, f.err
}

type fakeOrders struct {
	orders  []entity.Order
	pending int64
}

func (f *fakeOrders) FindOrdersByArtisan(context.Context, string, int) ([]entity.Order, error) {
	return f.orders, nil
}

func (f *fakeOrders) CountPendingOrders(context.Context, string) (int64, error) {
	return f.pending, nil
}

type fakeVoiceCommands struct {
	mu       sync.Mutex
	commands []entity.VoiceCommand
}

func (f *fakeVoiceCommands) CreateVoiceCommand(_ context.Context, cmd entity.VoiceCommand) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.commands = append(f.commands, cmd)
	return nil
}

func (f *fakeVoiceCommands) GetVoiceCommandsByArtisan(_ context.Context, artisanID string, limit, offset int) ([]entity.VoiceCommand, int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	var matching []entity.VoiceCommand
	for _, cmd := range f.commands {
		if cmd.ArtisanID == artisanID {
			matching = append(matching, cmd)
		}
	}
	total := len(matching)
	if offset >= total {
		return []entity.VoiceCommand{}, total, nil
	}
	end := offset + limit
	if end > total {
		end = total
	}
	return matching[offset:end], total, nil
}

type fakeRepository struct {
	products *fakeProducts
	artisans *fakeArtisans
	orders   *fakeOrders
	commands *fakeVoiceCommands
}

func newFakeRepository() *fakeRepository {
	return &fakeRepository{
		products: &fakeProducts{byName: map[string]entity.Product{}},
		artisans: &fakeArtisans{},
		orders:   &fakeOrders{},
		commands: &fakeVoiceCommands{},
	}
}

func (f *fakeRepository) NewClient(bool) (voiceRepository.Client, error) {
	return voiceRepository.Client{
		Products:      f.products,
		Artisans:      f.artisans,
		Orders:        f.orders,
		VoiceCommands: f.commands,
		Commit:        func() error { return nil },
		Rollback:      func() error { return nil },
	}, nil
}

type cacheEntry struct {
	data    []byte
	version int64
}

// fakeCache is an in-memory versioned cache with the same conflict rule as
// the Redis adapter.
type fakeCache struct {
	mu       sync.Mutex
	entries  map[string]cacheEntry
	readErr  error
	writeErr error
	writes   int
}

func newFakeCache() *fakeCache {
	return &fakeCache{entries: map[string]cacheEntry{}}
}

func (f *fakeCache) GetVersioned(_ context.Context, key string) ([]byte, int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.readErr != nil {
		return nil, 0, f.readErr
	}
	entry, ok := f.entries[key]
	if !ok {
		return nil, 0, redis.ErrCacheMiss
	}
	return entry.data, entry.version, nil
}

func (f *fakeCache) SetVersioned(_ context.Context, key string, data []byte, expected int64, _ time.Duration) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.writeErr != nil {
		return 0, f.writeErr
	}
	if f.entries[key].version != expected {
		return 0, redis.ErrVersionConflict
	}
	f.writes++
	next := expected + 1
	f.entries[key] = cacheEntry{data: data, version: next}
	return next, nil
}

func (f *fakeCache) bump(key string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	entry := f.entries[key]
	entry.version++
	if entry.data == nil {
		entry.data = []byte(`{}`)
	}
	f.entries[key] = entry
}

func (f *fakeCache) Ping(context.Context) error { return nil }
func (f *fakeCache) Close() error               { return nil }

// racingStore lets another writer bump the cached version between Get and
// Put, the way a second process would.
type racingStore struct {
	voiceRepository.IConversationStore
	cache *fakeCache
}

func (r *racingStore) Put(ctx context.Context, convCtx *entity.ConversationContext) error {
	r.cache.bump("voice:session:" + convCtx.SessionID)
	return r.IConversationStore.Put(ctx, convCtx)
}

type fakeUtils struct {
	mu  sync.Mutex
	seq int
}

func (f *fakeUtils) NewULIDFromTimestamp(time.Time) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.seq++
	return fmt.Sprintf("01TEST%020d", f.seq), nil
}

func (f *fakeUtils) NewSessionID() string { return "generated-session" }

func (f *fakeUtils) ValidateAudioFile(*multipart.FileHeader) error { return nil }

func (f *fakeUtils) ReadAudioFile(*multipart.FileHeader) ([]byte, string, error) {
	return nil, "", errors.New("not used")
}

type fakeS3 struct {
	mu        sync.Mutex
	uploads   map[string]string
	deadlines []time.Duration
}

func (f *fakeS3) UploadBytes(ctx context.Context, key, contentType string, _ []byte) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.uploads == nil {
		f.uploads = map[string]string{}
	}
	f.uploads[key] = contentType
	if deadline, ok := ctx.Deadline(); ok {
		f.deadlines = append(f.deadlines, time.Until(deadline))
	}
	return "https://bucket.example.com/" + key, nil
}

func (f *fakeS3) PresignUrl(fileURL string) (string, error) {
	return fileURL + "?signed=1", nil
}

type testHarness struct {
	svc         *voiceService
	repo        *fakeRepository
	cache       *fakeCache
	transcriber *fakeTranscriber
	synthesizer *fakeSynthesizer
	backend     *fakeBackend
	catalog     i18n.ICatalog
}

func newTestHarness() *testHarness {
	log := logrus.New()
	log.SetOutput(io.Discard)

	registry := i18n.NewRegistry()
	catalog := i18n.NewCatalog(registry)

	h := &testHarness{
		repo:        newFakeRepository(),
		cache:       newFakeCache(),
		transcriber: &fakeTranscriber{results: map[string]audio.Transcription{}},
		synthesizer: &fakeSynthesizer{},
		backend:     &fakeBackend{intents: map[string]string{}},
		catalog:     catalog,
	}

	config := DefaultVoiceConfig()
	store := voiceRepository.NewConversationStore(h.cache, config.SessionTTL, log)

	h.svc = NewVoiceService(
		log,
		h.repo,
		store,
		h.backend,
		h.transcriber,
		h.synthesizer,
		registry,
		catalog,
		nil,
		&fakeUtils{},
		config,
	).(*voiceService)

	return h
}

func (h *testHarness) turn(t testingT, sessionID, utterance string) *voice.VoiceTurnResult {
	t.Helper()
	result, err := h.svc.ProcessVoiceTurn(context.Background(), voice.VoiceTurnRequest{
		SessionID: sessionID,
		ArtisanID: "artisan-1",
		Audio:     []byte(utterance),
	})
	if err != nil {
		t.Fatalf("ProcessVoiceTurn(%q) error = %v", utterance, err)
	}
	return result
}

func (h *testHarness) context(t testingT, sessionID string) *entity.ConversationContext {
	t.Helper()
	convCtx, err := h.svc.store.Get(context.Background(), sessionID, "artisan-1")
	if err != nil {
		t.Fatalf("store.Get() error = %v", err)
	}
	return convCtx
}

type testingT interface {
	Helper()
	Fatalf(format string, args ...interface{})
}
