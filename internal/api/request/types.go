package request

// SelectShipRequest is the request body for starter and flagship selection
type SelectShipRequest struct {
	Ship string `json:"ship"`
}

// PurchaseRequest is the request body for buying a ship
type PurchaseRequest struct {
	Ship string `json:"ship"`
}

// DirectiveRequest is the request body for submitting a battle directive
type DirectiveRequest struct {
	Text string `json:"text"`
}
