package catalog

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/DhruvsOLaNkiI/Minimal-store/internal/domain"
	apperrors "github.com/DhruvsOLaNkiI/Minimal-store/pkg/errors"
)

// ============================================================================
// Catalog lookups
// ============================================================================

func TestListAll_SeedOrder(t *testing.T) {
	c := New()
	all := c.ListAll()

	require.Len(t, all, 4)
	ids := make([]string, len(all))
	for i, p := range all {
		ids[i] = p.ID
	}
	assert.Equal(t, []string{"1", "2", "3", "4"}, ids)
	assert.Equal(t, "Minimalist Watch", all[0].Name)
	assert.Equal(t, int64(299), all[0].Price)
}

func TestListAll_SeedPrices(t *testing.T) {
	want := map[string]int64{"1": 299, "2": 129, "3": 189, "4": 459}
	for _, p := range New().ListAll() {
		assert.Equal(t, want[p.ID], p.Price, "product %s", p.ID)
	}
}

func TestListAll_ReturnsCopy(t *testing.T) {
	c := New()
	all := c.ListAll()
	all[0].Name = "mutated"

	assert.Equal(t, "Minimalist Watch", c.ListAll()[0].Name)
}

func TestFindByID_Found(t *testing.T) {
	p, err := New().FindByID("3")
	require.NoError(t, err)
	assert.Equal(t, "Silk Scarf", p.Name)
	assert.NotEmpty(t, p.Details)
}

func TestFindByID_NotFound(t *testing.T) {
	_, err := New().FindByID("99")
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperrors.ErrNotFound))

	var appErr *apperrors.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, "product with id 99 not found", appErr.Message)
}

func TestFindBySlug(t *testing.T) {
	c := New()

	p, err := c.FindBySlug("gold-bracelet")
	require.NoError(t, err)
	assert.Equal(t, "4", p.ID)
	assert.Equal(t, "gold-bracelet", p.Slug)

	_, err = c.FindBySlug("Gold Bracelet")
	assert.True(t, errors.Is(err, apperrors.ErrNotFound))
}

func TestNewFrom_KeepsExplicitSlug(t *testing.T) {
	c := NewFrom([]domain.Product{{ID: "x", Name: "Thing", Slug: "custom"}}, nil, nil)

	p, err := c.FindBySlug("custom")
	require.NoError(t, err)
	assert.Equal(t, "x", p.ID)
}

func TestTrending(t *testing.T) {
	tr := New().Trending()
	require.Len(t, tr, 2)
	assert.Equal(t, "1", tr[0].ID)
	assert.Equal(t, "2", tr[1].ID)
}

func TestNewFrom_IgnoresUnknownTrendingAndDuplicates(t *testing.T) {
	c := NewFrom([]domain.Product{
		{ID: "a", Name: "first"},
		{ID: "a", Name: "second"},
	}, []string{"a", "zzz"}, nil)

	p, err := c.FindByID("a")
	require.NoError(t, err)
	assert.Equal(t, "first", p.Name)
	assert.Len(t, c.Trending(), 1)
	assert.Empty(t, c.Promotions())
}

func TestPromotions(t *testing.T) {
	promos := New().Promotions()
	require.Len(t, promos, 2)
	assert.Equal(t, "Summer Sale", promos[0].Title)
	assert.Equal(t, "New Collection", promos[1].Title)
}

// ============================================================================
// Search
// ============================================================================

func TestSearch_EmptyQueryReturnsInput(t *testing.T) {
	all := New().ListAll()
	assert.Equal(t, all, Search("", all))
}

func TestSearch_Containment(t *testing.T) {
	all := New().ListAll()
	queries := []string{"LEATHER", "silk", "gold", "a", "watch", "nothing-matches", "18K"}

	for _, q := range queries {
		t.Run(q, func(t *testing.T) {
			got := Search(q, all)
			lq := strings.ToLower(q)
			for _, p := range got {
				assert.True(t,
					strings.Contains(strings.ToLower(p.Name), lq) ||
						strings.Contains(strings.ToLower(p.Description), lq),
					"%q does not contain %q", p.Name, q)
			}
			// Nothing that matches is left out.
			matches := 0
			for _, p := range all {
				if strings.Contains(strings.ToLower(p.Name), lq) ||
					strings.Contains(strings.ToLower(p.Description), lq) {
					matches++
				}
			}
			assert.Len(t, got, matches)
		})
	}
}

func TestSearch_MatchesDescriptionAndKeepsOrder(t *testing.T) {
	// "leather" is in the watch description and the wallet name.
	got := Search("leather", New().ListAll())
	require.Len(t, got, 2)
	assert.Equal(t, "1", got[0].ID)
	assert.Equal(t, "2", got[1].ID)
}

// ============================================================================
// Sort
// ============================================================================

func TestParseSortKey(t *testing.T) {
	tests := map[string]domain.SortKey{
		"price-low":  domain.SortPriceLow,
		"PRICE-HIGH": domain.SortPriceHigh,
		" name ":     domain.SortName,
		"default":    domain.SortDefault,
		"":           domain.SortDefault,
		"rating":     domain.SortDefault,
	}
	for in, want := range tests {
		assert.Equal(t, want, ParseSortKey(in), "input %q", in)
	}
}

func sortFixture() []domain.Product {
	return []domain.Product{
		{ID: "a", Name: "banana", Price: 300},
		{ID: "b", Name: "Apple", Price: 100},
		{ID: "c", Name: "cherry", Price: 300},
		{ID: "d", Name: "apple", Price: 200},
		{ID: "e", Name: "Émeraude", Price: 100},
	}
}

func idsOf(ps []domain.Product) []string {
	out := make([]string, len(ps))
	for i, p := range ps {
		out[i] = p.ID
	}
	return out
}

func TestSort_PriceLowIsNonDecreasingAndStable(t *testing.T) {
	got := Sort(sortFixture(), domain.SortPriceLow)
	for i := 1; i < len(got); i++ {
		assert.LessOrEqual(t, got[i-1].Price, got[i].Price)
	}
	assert.Equal(t, []string{"b", "e", "d", "a", "c"}, idsOf(got))
}

func TestSort_PriceHighIsNonIncreasingAndStable(t *testing.T) {
	got := Sort(sortFixture(), domain.SortPriceHigh)
	for i := 1; i < len(got); i++ {
		assert.GreaterOrEqual(t, got[i-1].Price, got[i].Price)
	}
	assert.Equal(t, []string{"a", "c", "d", "b", "e"}, idsOf(got))
}

func TestSort_NameIsCollated(t *testing.T) {
	got := Sort(sortFixture(), domain.SortName)
	col := collate.New(language.English)
	for i := 1; i < len(got); i++ {
		assert.LessOrEqual(t, col.CompareString(got[i-1].Name, got[i].Name), 0)
	}
	// Accented and capitalised names sit with their base letters.
	assert.Equal(t, "c", got[3].ID)
	assert.Equal(t, "e", got[4].ID)
}

func TestSort_DefaultAndUnknownAreIdentity(t *testing.T) {
	in := sortFixture()
	assert.Equal(t, in, Sort(in, domain.SortDefault))
	assert.Equal(t, in, Sort(in, domain.SortKey("rating")))
}

func TestSort_DoesNotMutateInput(t *testing.T) {
	in := sortFixture()
	_ = Sort(in, domain.SortPriceHigh)
	assert.Equal(t, sortFixture(), in)
}

func TestSort_SeedByPrice(t *testing.T) {
	got := Sort(New().ListAll(), domain.SortPriceLow)
	assert.Equal(t, []string{"2", "3", "1", "4"}, idsOf(got))
}
