package query

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arvela/catalog-service/internal/model"
)

func fixtureProducts() []model.Product {
	base := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)
	return []model.Product{
		{
			BaseModel:   model.BaseModel{ID: "p1", DateCreated: base},
			Name:        "Espresso Machine",
			Description: "Pump driven espresso maker",
			Price:       250,
			CategoryIDs: []string{"cat-kitchen"},
			SKU:         "SKU-ESP",
			IsActive:    true,
			Attributes:  map[string]interface{}{"color": "silver"},
		},
		{
			BaseModel:   model.BaseModel{ID: "p2", DateCreated: base.Add(time.Hour)},
			Name:        "French Press",
			Description: "Glass carafe",
			Price:       30,
			CategoryIDs: []string{"cat-kitchen"},
			SKU:         "SKU-FRP",
			IsActive:    true,
			Attributes:  map[string]interface{}{"color": "black", "capacity": 8},
		},
		{
			BaseModel:   model.BaseModel{ID: "p3", DateCreated: base.Add(2 * time.Hour)},
			Name:        "Desk Lamp",
			Description: "LED lamp with dimmer",
			Price:       45,
			CategoryIDs: []string{"cat-office"},
			SKU:         "SKU-LMP",
			IsActive:    false,
			Attributes:  map[string]interface{}{},
		},
		{
			BaseModel:   model.BaseModel{ID: "p4", DateCreated: base.Add(3 * time.Hour)},
			Name:        "Aero Grinder",
			Description: "Burr grinder for espresso",
			Price:       120,
			CategoryIDs: []string{"cat-kitchen", "cat-office"},
			SKU:         "SKU-GRD",
			IsActive:    true,
			Attributes:  map[string]interface{}{"material": "steel"},
		},
	}
}

func ids(products []model.Product) []string {
	out := make([]string, 0, len(products))
	for _, p := range products {
		out = append(out, p.ID)
	}
	return out
}

func TestApplyNilFiltersReturnsAll(t *testing.T) {
	products := fixtureProducts()
	result := Apply(products, nil)
	assert.Equal(t, []string{"p1", "p2", "p3", "p4"}, ids(result))
}

func TestApplyCategory(t *testing.T) {
	result := Apply(fixtureProducts(), &Filters{Category: "cat-office"})
	assert.Equal(t, []string{"p3", "p4"}, ids(result))
}

func TestApplyPriceRange(t *testing.T) {
	min, max := 40.0, 130.0
	result := Apply(fixtureProducts(), &Filters{MinPrice: &min, MaxPrice: &max})
	assert.Equal(t, []string{"p3", "p4"}, ids(result))
}

func TestApplyPriceBoundsAreInclusive(t *testing.T) {
	min, max := 30.0, 45.0
	result := Apply(fixtureProducts(), &Filters{MinPrice: &min, MaxPrice: &max})
	assert.Equal(t, []string{"p2", "p3"}, ids(result))
}

func TestApplyIsActive(t *testing.T) {
	active := false
	result := Apply(fixtureProducts(), &Filters{IsActive: &active})
	assert.Equal(t, []string{"p3"}, ids(result))
}

func TestApplySearchIsCaseInsensitive(t *testing.T) {
	result := Apply(fixtureProducts(), &Filters{Search: "ESPRESSO"})
	assert.Equal(t, []string{"p1", "p4"}, ids(result))
}

func TestApplyCombinedFiltersAreConjunctive(t *testing.T) {
	active := true
	min := 100.0
	result := Apply(fixtureProducts(), &Filters{
		Category: "cat-kitchen",
		MinPrice: &min,
		IsActive: &active,
		Search:   "espresso",
	})
	assert.Equal(t, []string{"p1", "p4"}, ids(result))
}

func TestApplyPaginationNeedsBothParams(t *testing.T) {
	limit, page := 2, 1

	result := Apply(fixtureProducts(), &Filters{Limit: &limit})
	assert.Len(t, result, 4, "lone limit must be ignored")

	result = Apply(fixtureProducts(), &Filters{Page: &page})
	assert.Len(t, result, 4, "lone page must be ignored")

	result = Apply(fixtureProducts(), &Filters{Limit: &limit, Page: &page})
	assert.Equal(t, []string{"p1", "p2"}, ids(result))
}

func TestApplyDoesNotMutateInput(t *testing.T) {
	products := fixtureProducts()
	active := true
	Apply(products, &Filters{IsActive: &active, Category: "cat-kitchen"})
	assert.Equal(t, []string{"p1", "p2", "p3", "p4"}, ids(products))
}

func TestSearchEmptyQueryYieldsEmptySlice(t *testing.T) {
	result := Search(fixtureProducts(), "", nil)
	require.NotNil(t, result)
	assert.Empty(t, result)
}

func TestSearchMatchesStringAttributes(t *testing.T) {
	result := Search(fixtureProducts(), "steel", nil)
	assert.Equal(t, []string{"p4"}, ids(result))
}

func TestSearchIgnoresNonStringAttributes(t *testing.T) {
	result := Search(fixtureProducts(), "8", nil)
	assert.Empty(t, result, "numeric attribute values are not matched")
}

func TestSearchIncludesInactiveProducts(t *testing.T) {
	result := Search(fixtureProducts(), "lamp", nil)
	assert.Equal(t, []string{"p3"}, ids(result))
}

func TestSearchWithOptions(t *testing.T) {
	max := 200.0
	result := Search(fixtureProducts(), "espresso", &Options{
		Category: "cat-kitchen",
		MaxPrice: &max,
	})
	assert.Equal(t, []string{"p4"}, ids(result))
}

func TestSortPrice(t *testing.T) {
	products := fixtureProducts()

	Sort(products, "price:asc")
	assert.Equal(t, []string{"p2", "p3", "p4", "p1"}, ids(products))

	Sort(products, "price:desc")
	assert.Equal(t, []string{"p1", "p4", "p3", "p2"}, ids(products))
}

func TestSortName(t *testing.T) {
	products := fixtureProducts()
	Sort(products, "name")
	assert.Equal(t, []string{"p4", "p3", "p1", "p2"}, ids(products))
}

func TestSortDateDesc(t *testing.T) {
	products := fixtureProducts()
	Sort(products, "date:desc")
	assert.Equal(t, []string{"p4", "p3", "p2", "p1"}, ids(products))
}

func TestSortUnknownFieldLeavesOrder(t *testing.T) {
	products := fixtureProducts()
	Sort(products, "weight:asc")
	assert.Equal(t, []string{"p1", "p2", "p3", "p4"}, ids(products))
}

func TestSortIsStable(t *testing.T) {
	products := []model.Product{
		{BaseModel: model.BaseModel{ID: "a"}, Price: 10},
		{BaseModel: model.BaseModel{ID: "b"}, Price: 10},
		{BaseModel: model.BaseModel{ID: "c"}, Price: 5},
	}
	Sort(products, "price:asc")
	assert.Equal(t, []string{"c", "a", "b"}, ids(products))
}

func TestPaginate(t *testing.T) {
	products := fixtureProducts()

	assert.Equal(t, []string{"p3", "p4"}, ids(Paginate(products, 2, 2)))
	assert.Equal(t, []string{"p4"}, ids(Paginate(products, 3, 2)), "last page may be short")
	assert.Empty(t, Paginate(products, 2, 5), "out of range page is empty")
	assert.Empty(t, Paginate(products, 0, 1))
	assert.Empty(t, Paginate(products, 2, 0))
}
