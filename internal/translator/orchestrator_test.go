package translator

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/heartmarshall/kindleword/internal/provider"
)

// providerMock satisfies provider.Provider through func fields.
type providerMock struct {
	name       string
	LookupFunc func(ctx context.Context, term string) (*provider.RawResult, error)
	calls      []string
}

func (m *providerMock) Name() string { return m.name }

func (m *providerMock) Lookup(ctx context.Context, term string) (*provider.RawResult, error) {
	m.calls = append(m.calls, term)
	return m.LookupFunc(ctx, term)
}

func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func okResult(translation string) *provider.RawResult {
	return &provider.RawResult{
		Groups: []provider.SenseGroup{{Translations: []string{translation}}},
	}
}

func TestSmartTranslator_ShortTermUsesRichChain(t *testing.T) {
	t.Parallel()

	rich := &providerMock{name: "rich", LookupFunc: func(ctx context.Context, term string) (*provider.RawResult, error) {
		return okResult("привет"), nil
	}}
	plain := &providerMock{name: "plain", LookupFunc: func(ctx context.Context, term string) (*provider.RawResult, error) {
		t.Fatal("plain chain must not be consulted for a short term")
		return nil, nil
	}}

	st := New(newTestLogger(), []provider.Provider{rich}, []provider.Provider{plain}, 3)
	result, err := st.Fetch(context.Background(), "hello world")

	require.NoError(t, err)
	require.NotNil(t, result)
	assert.Equal(t, "привет", result.Translation)
	assert.Equal(t, []string{"hello world"}, rich.calls)
}

func TestSmartTranslator_PhraseUsesPlainChain(t *testing.T) {
	t.Parallel()

	rich := &providerMock{name: "rich", LookupFunc: func(ctx context.Context, term string) (*provider.RawResult, error) {
		t.Fatal("rich chain must not be consulted for a phrase")
		return nil, nil
	}}
	plain := &providerMock{name: "plain", LookupFunc: func(ctx context.Context, term string) (*provider.RawResult, error) {
		return okResult("три слова подряд"), nil
	}}

	st := New(newTestLogger(), []provider.Provider{rich}, []provider.Provider{plain}, 3)
	result, err := st.Fetch(context.Background(), "three word phrase")

	require.NoError(t, err)
	require.NotNil(t, result)
	assert.Len(t, plain.calls, 1)
}

func TestSmartTranslator_FallbackOnErrorAndEmpty(t *testing.T) {
	t.Parallel()

	failing := &providerMock{name: "failing", LookupFunc: func(ctx context.Context, term string) (*provider.RawResult, error) {
		return nil, errors.New("boom")
	}}
	empty := &providerMock{name: "empty", LookupFunc: func(ctx context.Context, term string) (*provider.RawResult, error) {
		return &provider.RawResult{}, nil
	}}
	last := &providerMock{name: "last", LookupFunc: func(ctx context.Context, term string) (*provider.RawResult, error) {
		return okResult("привет"), nil
	}}

	st := New(newTestLogger(), []provider.Provider{failing, empty, last}, nil, 3)
	result, err := st.Fetch(context.Background(), "hello")

	require.NoError(t, err)
	require.NotNil(t, result)
	assert.Equal(t, "привет", result.Translation)
	// Every adapter saw the same term, in chain order.
	assert.Equal(t, []string{"hello"}, failing.calls)
	assert.Equal(t, []string{"hello"}, empty.calls)
	assert.Equal(t, []string{"hello"}, last.calls)
}

func TestSmartTranslator_ExhaustedChainIsNilNotError(t *testing.T) {
	t.Parallel()

	failing := &providerMock{name: "failing", LookupFunc: func(ctx context.Context, term string) (*provider.RawResult, error) {
		return nil, errors.New("boom")
	}}

	st := New(newTestLogger(), []provider.Provider{failing, failing}, nil, 3)
	result, err := st.Fetch(context.Background(), "hello")

	require.NoError(t, err)
	assert.Nil(t, result)
}

func TestSmartTranslator_CancellationStopsChain(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	p := &providerMock{name: "p", LookupFunc: func(ctx context.Context, term string) (*provider.RawResult, error) {
		t.Fatal("no adapter call after cancellation")
		return nil, nil
	}}

	st := New(newTestLogger(), []provider.Provider{p}, nil, 3)
	result, err := st.Fetch(ctx, "hello")

	require.ErrorIs(t, err, context.Canceled)
	assert.Nil(t, result)
}
