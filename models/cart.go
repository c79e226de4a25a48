package models

// CartLine is one menu item plus a quantity within an in-progress order.
// At most one line exists per menu item id.
type CartLine struct {
	Item     MenuItem `json:"item"`
	Quantity int      `json:"quantity"`
}

// Cart is an ordered sequence of lines; insertion order is the order items
// were first added. All mutations are pure: they return a new snapshot and
// leave the receiver untouched, so carts can be tested without any HTTP
// machinery and stores can swap snapshots atomically.
type Cart struct {
	Lines []CartLine `json:"lines"`
}

func (c Cart) clone() Cart {
	lines := make([]CartLine, len(c.Lines))
	copy(lines, c.Lines)
	return Cart{Lines: lines}
}

// Add increments the quantity of an existing line or appends a new line with
// quantity 1. The sequence only grows on the first add of a given id.
func (c Cart) Add(item MenuItem) Cart {
	next := c.clone()
	for i := range next.Lines {
		if next.Lines[i].Item.ID == item.ID {
			next.Lines[i].Quantity++
			return next
		}
	}
	next.Lines = append(next.Lines, CartLine{Item: item, Quantity: 1})
	return next
}

// Remove drops the line matching itemID entirely, regardless of quantity.
// Unknown ids are a silent no-op, never an error.
func (c Cart) Remove(itemID string) Cart {
	next := Cart{Lines: make([]CartLine, 0, len(c.Lines))}
	for _, line := range c.Lines {
		if line.Item.ID != itemID {
			next.Lines = append(next.Lines, line)
		}
	}
	return next
}

// UpdateQuantity sets the line's quantity to max(0, quantity). A resulting
// zero does not remove the line; removal is a separate, explicit operation.
// Unknown ids are a silent no-op.
func (c Cart) UpdateQuantity(itemID string, quantity int) Cart {
	if quantity < 0 {
		quantity = 0
	}
	next := c.clone()
	for i := range next.Lines {
		if next.Lines[i].Item.ID == itemID {
			next.Lines[i].Quantity = quantity
			break
		}
	}
	return next
}

// Clear empties the cart unconditionally.
func (c Cart) Clear() Cart {
	return Cart{}
}

// Total is recomputed on every read and never stored, so it cannot drift
// from the line contents.
func (c Cart) Total() float64 {
	total := 0.0
	for _, line := range c.Lines {
		total += line.Item.Price * float64(line.Quantity)
	}
	return total
}

func (c Cart) IsEmpty() bool {
	return len(c.Lines) == 0
}
