package pricing

// LineItems is the canonical set of trip cost components. Each field is
// independently optional; a field holding zero is present.
type LineItems struct {
	BasePrice         Amount `json:"base_price"`
	TransportCost     Amount `json:"transport_cost"`
	AccommodationCost Amount `json:"accommodation_cost"`
	ActivitiesCost    Amount `json:"activities_cost"`
	OtherCost         Amount `json:"other_cost"`
}

func (li LineItems) all() []Amount {
	return []Amount{li.BasePrice, li.TransportCost, li.AccommodationCost, li.ActivitiesCost, li.OtherCost}
}

// Result is a derived cost breakdown. Either all three fields are present
// and Total == Subtotal + ServiceFee, or all three are absent.
type Result struct {
	Subtotal   Amount `json:"subtotal"`
	ServiceFee Amount `json:"service_fee"`
	Total      Amount `json:"total"`
}

// ComputeSubtotal sums the present line items. The subtotal is absent if and
// only if every line item is absent.
func ComputeSubtotal(items LineItems) Amount {
	return Sum(items.all()...)
}

// Sum adds amounts with the same absence rule as ComputeSubtotal.
func Sum(amounts ...Amount) Amount {
	total := Absent()
	for _, a := range amounts {
		total = total.plus(a)
	}
	return total
}

// ComputeServiceFee applies fee to subtotal and rounds to cents.
func ComputeServiceFee(subtotal Amount, fee Fee) Amount {
	v, ok := subtotal.Value()
	if !ok {
		return Absent()
	}
	return Of(v.Mul(fee.rate)).Cents()
}

// ComputeTotal composes subtotal, fee and total. DefaultFee applies when no
// fee is passed; only the first fee is used.
func ComputeTotal(items LineItems, fee ...Fee) Result {
	f := DefaultFee
	if len(fee) > 0 {
		f = fee[0]
	}

	subtotal := ComputeSubtotal(items)
	if !subtotal.IsPresent() {
		return Result{}
	}
	serviceFee := ComputeServiceFee(subtotal, f)
	return Result{
		Subtotal:   subtotal,
		ServiceFee: serviceFee,
		Total:      subtotal.plus(serviceFee),
	}
}
