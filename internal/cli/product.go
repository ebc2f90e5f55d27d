package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/avasin/brewmart/internal/catalog"
	"github.com/avasin/brewmart/internal/common"
	"github.com/avasin/brewmart/internal/models"
)

// List loads the catalog and prints the products matching the current view
// filters (search term and selected category), one line per product.
func (a *App) List(ctx context.Context) error {
	products, err := a.catalogService.Load(ctx)
	if err != nil {
		a.log.Error(ctx, "error loading catalog", "error", err)
		return err
	}

	visible := catalog.Filter(products, a.searchTerm, a.selectedCategory)

	if a.searchTerm != "" || a.selectedCategory != models.CategoryAll {
		printlnFn(fmt.Sprintf("Showing %d of %d products (search: %q, category: %s)",
			len(visible), len(products), a.searchTerm, a.selectedCategory))
	}

	if len(visible) == 0 {
		printlnFn("No products found.")
		return nil
	}

	for _, p := range visible {
		printlnFn(fmt.Sprintf("[%s] %s - $%s (%s)", p.Id, p.Title, p.PriceString(), p.Category))
	}
	return nil
}

// Search updates the view's search term. An empty term clears it.
// The filtered list is printed right away.
func (a *App) Search(ctx context.Context, term string) error {
	a.searchTerm = strings.TrimSpace(term)
	if a.searchTerm == "" {
		printlnFn("Search cleared.")
	}
	return a.List(ctx)
}

// Category updates the view's category filter. An empty name or "All"
// clears it. Unknown categories are reported with the valid options.
func (a *App) Category(ctx context.Context, name string) error {
	name = strings.TrimSpace(name)
	if name == "" || strings.EqualFold(name, string(models.CategoryAll)) {
		a.selectedCategory = models.CategoryAll
		return a.List(ctx)
	}

	c, err := models.ParseCategory(name)
	if err != nil {
		printlnFn(fmt.Sprintf("Unknown category %q. Valid categories: %s",
			name, joinCategories()))
		return nil
	}

	a.selectedCategory = c
	return a.List(ctx)
}

// Add prompts for the product fields and creates a new catalog entry.
// Validation failures are reported to the user without an error.
func (a *App) Add(ctx context.Context) error {
	fields, err := a.inputProductFields(ctx, models.ProductFields{Category: models.CategoryCoffee})
	if err != nil {
		return err
	}

	p, err := a.catalogService.Create(ctx, *fields)
	if err != nil {
		if errors.Is(err, common.ErrorValidation) {
			printlnFn("Error:", err.Error())
			return nil
		}
		a.log.Error(ctx, "error creating product", "error", err)
		return err
	}

	printlnFn(fmt.Sprintf("Created product [%s] %s.", p.Id, p.Title))
	return nil
}

// Edit prompts for a product id and replacement fields, then updates the
// entry in place. The current values are shown as defaults in the prompts.
func (a *App) Edit(ctx context.Context) error {
	id, err := getSimpleText(a.reader, "Enter product id to edit", os.Stdout)
	if err != nil {
		return err
	}

	current, err := a.catalogService.Get(ctx, id)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			printlnFn("Product not found.")
			return nil
		}
		a.log.Error(ctx, "error loading product", "error", err)
		return err
	}

	fields, err := a.inputProductFields(ctx, models.ProductFields{
		Title:       current.Title,
		Price:       current.Price,
		Description: current.Description,
		Category:    current.Category,
		Image:       current.Image,
	})
	if err != nil {
		return err
	}

	p, err := a.catalogService.Update(ctx, id, *fields)
	if err != nil {
		if errors.Is(err, common.ErrorValidation) {
			printlnFn("Error:", err.Error())
			return nil
		}
		a.log.Error(ctx, "error updating product", "error", err)
		return err
	}

	printlnFn(fmt.Sprintf("Updated product [%s] %s.", p.Id, p.Title))
	return nil
}

// Remove prompts for a product id and deletes the entry.
func (a *App) Remove(ctx context.Context) error {
	id, err := getSimpleText(a.reader, "Enter product id to delete", os.Stdout)
	if err != nil {
		return err
	}

	if err := a.catalogService.Delete(ctx, id); err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			printlnFn("Product not found.")
			return nil
		}
		a.log.Error(ctx, "error deleting product", "error", err)
		return err
	}

	printlnFn("Deleted.")
	return nil
}

// Show prompts for a product id and prints the full product card.
func (a *App) Show(ctx context.Context) error {
	id, err := getSimpleText(a.reader, "Enter product id to show", os.Stdout)
	if err != nil {
		return err
	}

	p, err := a.catalogService.Get(ctx, id)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			printlnFn("Product not found.")
			return nil
		}
		a.log.Error(ctx, "error loading product", "error", err)
		return err
	}

	printlnFn(p.Title)
	printlnFn(fmt.Sprintf("Price: $%s", p.PriceString()))
	printlnFn(fmt.Sprintf("Category: %s", p.Category))
	printlnFn(fmt.Sprintf("Description: %s", p.Description))
	if p.Image != "" {
		printlnFn(fmt.Sprintf("Image: %s", p.Image))
	}
	return nil
}

// inputProductFields gathers the mutable product fields interactively.
// Non-empty defaults are kept when the user enters a blank line, which lets
// Edit reuse the same workflow as Add.
func (a *App) inputProductFields(ctx context.Context, defaults models.ProductFields) (*models.ProductFields, error) {
	title, err := getSimpleText(a.reader, promptWithDefault("Enter title", defaults.Title), os.Stdout)
	if err != nil {
		return nil, err
	}
	if title == "" {
		title = defaults.Title
	}

	priceText, err := getSimpleText(a.reader, promptWithDefault("Enter price", priceDefault(defaults.Price)), os.Stdout)
	if err != nil {
		return nil, err
	}
	price := defaults.Price
	if priceText != "" {
		price, err = decimal.NewFromString(priceText)
		if err != nil {
			printlnFn(fmt.Sprintf("Invalid price: %s", priceText))
			return nil, fmt.Errorf("parse price: %w", err)
		}
	}

	description, err := getSimpleText(a.reader, promptWithDefault("Enter description", defaults.Description), os.Stdout)
	if err != nil {
		return nil, err
	}
	if description == "" {
		description = defaults.Description
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	// The default category goes first so an empty choice keeps it.
	names := make([]string, 0, len(models.Categories))
	names = append(names, string(defaults.Category))
	for _, c := range models.Categories {
		if c != defaults.Category {
			names = append(names, string(c))
		}
	}
	chosen, err := GetChoice(a.reader, "Select category:", names, os.Stdout)
	if err != nil {
		printlnFn("Error:", err.Error())
		return nil, err
	}
	category, err := models.ParseCategory(chosen)
	if err != nil {
		return nil, err
	}

	image, err := getSimpleText(a.reader, promptWithDefault("Enter image URL (optional)", defaults.Image), os.Stdout)
	if err != nil {
		return nil, err
	}
	if image == "" {
		image = defaults.Image
	}

	return &models.ProductFields{
		Title:       title,
		Price:       price,
		Description: description,
		Category:    category,
		Image:       image,
	}, nil
}

func promptWithDefault(prompt, def string) string {
	if def == "" {
		return prompt
	}
	return fmt.Sprintf("%s [%s]", prompt, def)
}

func priceDefault(p decimal.Decimal) string {
	if p.IsZero() {
		return ""
	}
	return p.StringFixed(2)
}

func joinCategories() string {
	names := make([]string, 0, len(models.Categories))
	for _, c := range models.Categories {
		names = append(names, string(c))
	}
	return strings.Join(names, ", ")
}
