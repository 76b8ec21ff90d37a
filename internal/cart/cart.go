package cart

import (
	"errors"
	"fmt"

	"github.com/bigpasteldabel/storefront/internal/models"
	"github.com/shopspring/decimal"
)

var (
	// ErrUnavailable signals a recoverable unavailable-item selection;
	// the cart is never mutated when it is returned.
	ErrUnavailable = errors.New("item is unavailable")
	// ErrToppingUnavailable signals that the chosen topping failed the
	// confirm-time availability check.
	ErrToppingUnavailable = errors.New("topping is unavailable")
	// ErrNotTopping is returned when a composition names an item that
	// is not a topping.
	ErrNotTopping = errors.New("item is not a topping")
	// ErrToppingDirectAdd is returned when a topping is selected
	// outside the composition flow.
	ErrToppingDirectAdd = errors.New("toppings can only be added to a pastel")
)

// Availability is the live catalog view consulted on every selection
// and again at composition confirm time. Availability may change while
// a composition is pending, so captured item values are never trusted
// for this check.
type Availability interface {
	IsSelectable(id string) bool
}

// Result reports the outcome of a selection that mutated the cart.
type Result struct {
	Line models.OrderLine
	// PendingComposition is true when the selection opened the
	// composition flow instead of mutating the cart.
	PendingComposition bool
}

// Cart owns the order line collection. Lines keep insertion order;
// at most one line exists per distinct line id. Methods are
// synchronous and run to completion; the cart has a single logical
// actor and is not safe for concurrent use.
type Cart struct {
	availability Availability
	lines        []models.OrderLine
	index        map[string]int
	pending      *models.MenuItem
}

// New creates an empty cart checking availability against the given
// catalog view.
func New(availability Availability) *Cart {
	return &Cart{
		availability: availability,
		index:        make(map[string]int),
	}
}

// SelectOrAdd handles a customer tapping a menu item. Unavailable
// items are rejected without mutation. Composable items open the
// composition flow (the cart is untouched until confirmation);
// standalone items merge into or create their direct-add line.
func (c *Cart) SelectOrAdd(item models.MenuItem) (Result, error) {
	if !c.availability.IsSelectable(item.ID) {
		return Result{}, fmt.Errorf("%w: %s", ErrUnavailable, item.Name)
	}

	switch item.ItemType {
	case models.ItemTypeComposable:
		pending := item
		c.pending = &pending
		return Result{PendingComposition: true}, nil
	case models.ItemTypeTopping:
		return Result{}, fmt.Errorf("%w: %s", ErrToppingDirectAdd, item.Name)
	}

	line := c.upsert(item.ID+":direct", models.OrderLine{
		BaseItemName: item.Name,
		DisplayName:  item.Name,
		UnitPrice:    item.Price,
	})
	return Result{Line: line}, nil
}

// ConfirmComposition completes the composition flow. Availability is
// re-checked against current catalog state for the base item and the
// chosen topping; on failure the cart is not mutated and the error
// names the offending item. The pending composition is closed
// regardless of outcome.
func (c *Cart) ConfirmComposition(base models.MenuItem, topping *models.MenuItem) (Result, error) {
	c.pending = nil

	if !c.availability.IsSelectable(base.ID) {
		return Result{}, fmt.Errorf("%w: %s", ErrUnavailable, base.Name)
	}
	if topping != nil {
		if topping.ItemType != models.ItemTypeTopping {
			return Result{}, fmt.Errorf("%w: %s", ErrNotTopping, topping.Name)
		}
		if !c.availability.IsSelectable(topping.ID) {
			return Result{}, fmt.Errorf("%w: %s", ErrToppingUnavailable, topping.Name)
		}
	}

	lineID := base.ID + ":none"
	displayName := base.Name
	unitPrice := base.Price
	if topping != nil {
		lineID = base.ID + ":" + topping.ID
		displayName = fmt.Sprintf("%s (Borda: %s)", base.Name, topping.Name)
		unitPrice = base.Price.Add(topping.Price)
	}

	line := c.upsert(lineID, models.OrderLine{
		BaseItemName:    base.Name,
		DisplayName:     displayName,
		UnitPrice:       unitPrice,
		SelectedTopping: topping,
	})
	return Result{Line: line}, nil
}

// PendingComposition returns the item awaiting a topping choice, if
// any.
func (c *Cart) PendingComposition() (models.MenuItem, bool) {
	if c.pending == nil {
		return models.MenuItem{}, false
	}
	return *c.pending, true
}

// CancelComposition closes the composition flow without mutating the
// cart.
func (c *Cart) CancelComposition() {
	c.pending = nil
}

// RemoveLine deletes the line if present; absent ids are a no-op.
func (c *Cart) RemoveLine(lineID string) {
	i, ok := c.index[lineID]
	if !ok {
		return
	}
	c.lines = append(c.lines[:i], c.lines[i+1:]...)
	delete(c.index, lineID)
	for j := i; j < len(c.lines); j++ {
		c.index[c.lines[j].LineID] = j
	}
}

// UpdateQuantity sets the line's quantity to exactly newQuantity.
// Zero or negative removes the line. Unknown ids are a no-op. The
// line keeps its position.
func (c *Cart) UpdateQuantity(lineID string, newQuantity int) {
	if newQuantity <= 0 {
		c.RemoveLine(lineID)
		return
	}
	if i, ok := c.index[lineID]; ok {
		c.lines[i].Quantity = newQuantity
	}
}

// Line returns the line with the given id.
func (c *Cart) Line(lineID string) (models.OrderLine, bool) {
	i, ok := c.index[lineID]
	if !ok {
		return models.OrderLine{}, false
	}
	return c.lines[i], true
}

// Lines returns the lines in insertion order.
func (c *Cart) Lines() []models.OrderLine {
	lines := make([]models.OrderLine, len(c.lines))
	copy(lines, c.lines)
	return lines
}

// Subtotal sums unit price times quantity over all lines using exact
// decimal accumulation.
func (c *Cart) Subtotal() decimal.Decimal {
	total := decimal.Zero
	for _, l := range c.lines {
		total = total.Add(l.LineTotal())
	}
	return total
}

// TotalItemCount sums quantities over all lines.
func (c *Cart) TotalItemCount() int {
	count := 0
	for _, l := range c.lines {
		count += l.Quantity
	}
	return count
}

// Clear empties the cart. Used after a successful order hand-off.
func (c *Cart) Clear() {
	c.lines = nil
	c.index = make(map[string]int)
	c.pending = nil
}

// upsert increments the quantity of an existing line or appends a new
// one with quantity 1. First add determines position.
func (c *Cart) upsert(lineID string, line models.OrderLine) models.OrderLine {
	if i, ok := c.index[lineID]; ok {
		c.lines[i].Quantity++
		return c.lines[i]
	}
	line.LineID = lineID
	line.Quantity = 1
	c.index[lineID] = len(c.lines)
	c.lines = append(c.lines, line)
	return line
}
