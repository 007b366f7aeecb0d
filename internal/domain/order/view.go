package order

import "time"

// View is the response shape for an order.
type View struct {
	ID        string     `json:"id"`
	UserID    int64      `json:"userId"`
	Total     int64      `json:"total"`
	CreatedAt time.Time  `json:"createdAt"`
	Lines     []LineView `json:"lines,omitempty"`
}

// LineView is the response shape for a single order line.
type LineView struct {
	ID        string    `json:"id"`
	OrderID   string    `json:"orderId"`
	ItemID    string    `json:"itemId,omitempty"`
	Shots     int       `json:"shots,omitempty"`
	Caffeine  string    `json:"caffeine,omitempty"`
	Milk      string    `json:"milk,omitempty"`
	Price     int64     `json:"price"`
	CreatedAt time.Time `json:"createdAt"`
}

// ToView maps an order and its lines to the response shape. Pass nil lines
// for listings that omit line detail.
func ToView(o Order, lines []Line) View {
	v := View{
		ID:        o.ID,
		UserID:    o.UserID,
		Total:     o.Total,
		CreatedAt: o.CreatedAt,
	}
	if lines != nil {
		v.Lines = make([]LineView, len(lines))
		for i, line := range lines {
			v.Lines[i] = ToLineView(line)
		}
	}
	return v
}

// ToLineView maps a single line to the response shape. An unpriced line
// renders as price 0.
func ToLineView(line Line) LineView {
	v := LineView{
		ID:        line.ID,
		OrderID:   line.OrderID,
		ItemID:    line.ItemID,
		CreatedAt: line.CreatedAt,
	}
	if line.Taste != nil {
		v.Shots = line.Taste.Shots
		v.Caffeine = string(line.Taste.Caffeine)
		v.Milk = string(line.Taste.Milk)
	}
	if line.Price != nil {
		v.Price = *line.Price
	}
	return v
}
