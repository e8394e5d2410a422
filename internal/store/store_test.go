package store

import (
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/go-while/go-matal/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	return NewStore(filepath.Join(t.TempDir(), "proverbs.json"))
}

func testProverb(id int, translation string) models.Proverb {
	return models.Proverb{
		ID:            id,
		TextDari:      "متن دری",
		TextPashto:    "پښتو متن",
		TranslationEn: translation,
		Meaning:       "a meaning",
		Category:      "wisdom",
	}
}

func TestReadAllMissingFileSelfHeals(t *testing.T) {
	st := newTestStore(t)

	proverbs, err := st.ReadAll()
	require.NoError(t, err)
	assert.Empty(t, proverbs)

	// the backing file must now exist and contain an empty collection
	data, err := os.ReadFile(st.FilePath)
	require.NoError(t, err)
	assert.Equal(t, "[]", string(data))
}

func TestReadAllCorruptFile(t *testing.T) {
	st := newTestStore(t)
	require.NoError(t, os.WriteFile(st.FilePath, []byte("{not json"), 0o644))

	_, err := st.ReadAll()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse")
}

func TestWriteAllReadAllRoundTrip(t *testing.T) {
	st := newTestStore(t)
	want := []models.Proverb{
		testProverb(1, "first"),
		testProverb(2, "second"),
		testProverb(7, "seventh"),
	}

	require.NoError(t, st.WriteAll(want))
	got, err := st.ReadAll()
	require.NoError(t, err)
	assert.Equal(t, want, got)

	// repeated reads with no intervening mutation are identical
	again, err := st.ReadAll()
	require.NoError(t, err)
	assert.Equal(t, got, again)
}

func TestInitializeSeedsEmptyStore(t *testing.T) {
	st := newTestStore(t)
	require.NoError(t, st.Initialize())

	proverbs, err := st.ReadAll()
	require.NoError(t, err)
	require.Len(t, proverbs, 5)
	for i, p := range proverbs {
		assert.Equal(t, i+1, p.ID)
		assert.NotEmpty(t, p.TextDari)
		assert.NotEmpty(t, p.TextPashto)
		assert.NotEmpty(t, p.TranslationEn)
		assert.NotEmpty(t, p.Category)
	}
}

func TestInitializeLeavesExistingRecords(t *testing.T) {
	st := newTestStore(t)
	want := []models.Proverb{testProverb(42, "already here")}
	require.NoError(t, st.WriteAll(want))

	require.NoError(t, st.Initialize())

	got, err := st.ReadAll()
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestNextProverbID(t *testing.T) {
	testCases := []struct {
		name string
		ids  []int
		want int
	}{
		{"empty collection", nil, 1},
		{"single record", []int{1}, 2},
		{"gaps are not reused", []int{1, 3, 5}, 6},
		{"unordered ids", []int{5, 2, 9, 1}, 10},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			var proverbs []models.Proverb
			for _, id := range tc.ids {
				proverbs = append(proverbs, testProverb(id, "p"))
			}
			assert.Equal(t, tc.want, NextProverbID(proverbs))
		})
	}
}

func TestFindProverb(t *testing.T) {
	proverbs := []models.Proverb{
		testProverb(1, "one"),
		testProverb(3, "three"),
	}

	p := FindProverb(proverbs, 3)
	require.NotNil(t, p)
	assert.Equal(t, "three", p.TranslationEn)

	assert.Nil(t, FindProverb(proverbs, 2))
	assert.Nil(t, FindProverb(nil, 1))
}

func TestMutateNotFoundLeavesFileUntouched(t *testing.T) {
	st := newTestStore(t)
	want := []models.Proverb{testProverb(1, "one")}
	require.NoError(t, st.WriteAll(want))

	err := st.Mutate(func(proverbs []models.Proverb) ([]models.Proverb, error) {
		return nil, ErrNotFound
	})
	require.ErrorIs(t, err, ErrNotFound)

	got, err := st.ReadAll()
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestMutateSerializesConcurrentAppends(t *testing.T) {
	st := newTestStore(t)
	const writers = 20

	var wg sync.WaitGroup
	for i := 0; i < writers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			err := st.Mutate(func(proverbs []models.Proverb) ([]models.Proverb, error) {
				p := testProverb(NextProverbID(proverbs), "concurrent")
				return append(proverbs, p), nil
			})
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	proverbs, err := st.ReadAll()
	require.NoError(t, err)
	require.Len(t, proverbs, writers)

	// no append may be lost and every assigned id must be distinct
	seen := make(map[int]bool)
	for _, p := range proverbs {
		assert.False(t, seen[p.ID], "duplicate id %d", p.ID)
		seen[p.ID] = true
	}
}
