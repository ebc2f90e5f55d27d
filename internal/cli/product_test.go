package cli

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/avasin/brewmart/internal/common"
	"github.com/avasin/brewmart/internal/models"
)

type fakeCatalog struct {
	products []models.Product

	createFields models.ProductFields
	createOut    *models.Product
	createErr    error

	updateID     string
	updateFields models.ProductFields
	updateOut    *models.Product
	updateErr    error

	deleteID  string
	deleteErr error

	getID  string
	getOut *models.Product
	getErr error
}

func (f *fakeCatalog) Load(context.Context) ([]models.Product, error) {
	return f.products, nil
}
func (f *fakeCatalog) Create(_ context.Context, fields models.ProductFields) (*models.Product, error) {
	f.createFields = fields
	return f.createOut, f.createErr
}
func (f *fakeCatalog) Update(_ context.Context, id string, fields models.ProductFields) (*models.Product, error) {
	f.updateID, f.updateFields = id, fields
	return f.updateOut, f.updateErr
}
func (f *fakeCatalog) Delete(_ context.Context, id string) error {
	f.deleteID = id
	return f.deleteErr
}
func (f *fakeCatalog) Get(_ context.Context, id string) (*models.Product, error) {
	f.getID = id
	return f.getOut, f.getErr
}

func sampleViewProducts() []models.Product {
	return []models.Product{
		{Id: "1", Title: "Dark Roast Beans", Price: decimal.New(1299, -2), Description: "Bold and smoky", Category: models.CategoryCoffee},
		{Id: "2", Title: "Pour Over Kit", Price: decimal.New(3450, -2), Description: "Everything for a clean cup", Category: models.CategoryBundle},
		{Id: "3", Title: "Ceramic Mug", Price: decimal.New(1800, -2), Description: "Holds 350ml", Category: models.CategoryAccessories},
	}
}

func TestList_AppliesViewFilters(t *testing.T) {
	lines := silencePrintln(t)

	f := &fakeCatalog{products: sampleViewProducts()}
	a := &App{
		catalogService:   f,
		log:              testLogger(),
		searchTerm:       "roast",
		selectedCategory: models.CategoryAll,
	}

	require.NoError(t, a.List(context.Background()))

	joined := strings.Join(*lines, "\n")
	require.Contains(t, joined, "Dark Roast Beans")
	require.NotContains(t, joined, "Ceramic Mug")
}

func TestList_EmptyResult(t *testing.T) {
	lines := silencePrintln(t)

	f := &fakeCatalog{products: sampleViewProducts()}
	a := &App{
		catalogService:   f,
		log:              testLogger(),
		searchTerm:       "nothing matches this",
		selectedCategory: models.CategoryAll,
	}

	require.NoError(t, a.List(context.Background()))
	require.Contains(t, strings.Join(*lines, "\n"), "No products found.")
}

func TestSearch_SetsTermAndLists(t *testing.T) {
	silencePrintln(t)

	f := &fakeCatalog{products: sampleViewProducts()}
	a := &App{catalogService: f, log: testLogger(), selectedCategory: models.CategoryAll}

	require.NoError(t, a.Search(context.Background(), "  mug  "))
	require.Equal(t, "mug", a.searchTerm)

	require.NoError(t, a.Search(context.Background(), ""))
	require.Equal(t, "", a.searchTerm)
}

func TestCategory_SetClearAndUnknown(t *testing.T) {
	lines := silencePrintln(t)

	f := &fakeCatalog{products: sampleViewProducts()}
	a := &App{catalogService: f, log: testLogger(), selectedCategory: models.CategoryAll}

	require.NoError(t, a.Category(context.Background(), "Coffee"))
	require.Equal(t, models.CategoryCoffee, a.selectedCategory)

	require.NoError(t, a.Category(context.Background(), "All"))
	require.Equal(t, models.CategoryAll, a.selectedCategory)

	require.NoError(t, a.Category(context.Background(), "Coffee"))
	require.NoError(t, a.Category(context.Background(), ""))
	require.Equal(t, models.CategoryAll, a.selectedCategory)

	require.NoError(t, a.Category(context.Background(), "Tea"))
	require.Equal(t, models.CategoryAll, a.selectedCategory)
	require.Contains(t, strings.Join(*lines, "\n"), "Unknown category")
}

func TestAdd_CreatesProduct(t *testing.T) {
	silencePrintln(t)
	restore := stubInputs(t,
		// title, price, description, category choice, image
		[]string{"House Blend", "15.50", "Balanced everyday cup", "1", ""},
		nil,
	)
	defer restore()

	created := &models.Product{Id: "new-id", Title: "House Blend"}
	f := &fakeCatalog{createOut: created}
	a := &App{catalogService: f, log: testLogger()}

	require.NoError(t, a.Add(context.Background()))
	require.Equal(t, "House Blend", f.createFields.Title)
	require.True(t, f.createFields.Price.Equal(decimal.New(1550, -2)),
		"price mismatch: %s", f.createFields.Price)
	require.Equal(t, models.CategoryCoffee, f.createFields.Category)
}

func TestAdd_ValidationErrorReported(t *testing.T) {
	lines := silencePrintln(t)
	restore := stubInputs(t,
		[]string{"", "15.50", "desc", "1", ""},
		nil,
	)
	defer restore()

	f := &fakeCatalog{createErr: fmt.Errorf("title must not be empty: %w", common.ErrorValidation)}
	a := &App{catalogService: f, log: testLogger()}

	require.NoError(t, a.Add(context.Background()))
	require.Contains(t, strings.Join(*lines, "\n"), "title must not be empty")
}

func TestAdd_InvalidPriceRejected(t *testing.T) {
	silencePrintln(t)
	restore := stubInputs(t,
		[]string{"House Blend", "abc"},
		nil,
	)
	defer restore()

	f := &fakeCatalog{}
	a := &App{catalogService: f, log: testLogger()}

	require.Error(t, a.Add(context.Background()))
	require.Empty(t, f.createFields.Title, "store should not be called")
}

func TestEdit_KeepsDefaultsOnBlankInput(t *testing.T) {
	silencePrintln(t)
	restore := stubInputs(t,
		// id, then blank title/price/description, keep category, blank image
		[]string{"2", "", "", "", "", ""},
		nil,
	)
	defer restore()

	current := &models.Product{
		Id:          "2",
		Title:       "Pour Over Kit",
		Price:       decimal.New(3450, -2),
		Description: "Everything for a clean cup",
		Category:    models.CategoryBundle,
	}
	f := &fakeCatalog{getOut: current, updateOut: current}
	a := &App{catalogService: f, log: testLogger()}

	require.NoError(t, a.Edit(context.Background()))
	require.Equal(t, "2", f.updateID)
	require.Equal(t, "Pour Over Kit", f.updateFields.Title)
	require.True(t, f.updateFields.Price.Equal(decimal.New(3450, -2)))
	require.Equal(t, models.CategoryBundle, f.updateFields.Category)
}

func TestEdit_UnknownIdReported(t *testing.T) {
	lines := silencePrintln(t)
	restore := stubInputs(t, []string{"missing"}, nil)
	defer restore()

	f := &fakeCatalog{getErr: fmt.Errorf("product missing: %w", common.ErrorNotFound)}
	a := &App{catalogService: f, log: testLogger()}

	require.NoError(t, a.Edit(context.Background()))
	require.Contains(t, strings.Join(*lines, "\n"), "Product not found.")
}

func TestRemove(t *testing.T) {
	silencePrintln(t)
	restore := stubInputs(t, []string{"3"}, nil)
	defer restore()

	f := &fakeCatalog{}
	a := &App{catalogService: f, log: testLogger()}

	require.NoError(t, a.Remove(context.Background()))
	require.Equal(t, "3", f.deleteID)
}

func TestRemove_UnknownIdReported(t *testing.T) {
	lines := silencePrintln(t)
	restore := stubInputs(t, []string{"missing"}, nil)
	defer restore()

	f := &fakeCatalog{deleteErr: fmt.Errorf("product missing: %w", common.ErrorNotFound)}
	a := &App{catalogService: f, log: testLogger()}

	require.NoError(t, a.Remove(context.Background()))
	require.Contains(t, strings.Join(*lines, "\n"), "Product not found.")
}

func TestShow_PrintsProductCard(t *testing.T) {
	lines := silencePrintln(t)
	restore := stubInputs(t, []string{"1"}, nil)
	defer restore()

	f := &fakeCatalog{getOut: &models.Product{
		Id:          "1",
		Title:       "Dark Roast Beans",
		Price:       decimal.New(1299, -2),
		Description: "Bold and smoky",
		Category:    models.CategoryCoffee,
		Image:       "https://example.org/dark-roast.jpg",
	}}
	a := &App{catalogService: f, log: testLogger()}

	require.NoError(t, a.Show(context.Background()))

	joined := strings.Join(*lines, "\n")
	require.Contains(t, joined, "Dark Roast Beans")
	require.Contains(t, joined, "Price: $12.99")
	require.Contains(t, joined, "Category: Coffee")
	require.Contains(t, joined, "https://example.org/dark-roast.jpg")
}
