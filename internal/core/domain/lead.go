package domain

import "time"

// ContactForm is an anonymous enquiry from the public site.
type ContactForm struct {
	ID        string    `json:"id" bson:"_id"`
	Name      string    `json:"name" bson:"name"`
	Email     string    `json:"email" bson:"email"`
	Phone     *string   `json:"phone" bson:"phone,omitempty"`
	Company   *string   `json:"company" bson:"company,omitempty"`
	Message   string    `json:"message" bson:"message"`
	CreatedAt time.Time `json:"created_at" bson:"created_at"`
}

// QuoteForm is an anonymous quote request from the public site.
type QuoteForm struct {
	ID                  string    `json:"id" bson:"_id"`
	Name                string    `json:"name" bson:"name"`
	Company             string    `json:"company" bson:"company"`
	Email               string    `json:"email" bson:"email"`
	Phone               string    `json:"phone" bson:"phone"`
	ProductCategory     string    `json:"product_category" bson:"product_category"`
	ProductDescription  string    `json:"product_description" bson:"product_description"`
	DestinationCountry  string    `json:"destination_country" bson:"destination_country"`
	Quantity            string    `json:"quantity" bson:"quantity"`
	MOQ                 *string   `json:"moq" bson:"moq,omitempty"`
	Urgency             *string   `json:"urgency" bson:"urgency,omitempty"`
	SpecialInstructions *string   `json:"special_instructions" bson:"special_instructions,omitempty"`
	CreatedAt           time.Time `json:"created_at" bson:"created_at"`
}

// StatusCheck is a legacy liveness record written by monitoring clients.
type StatusCheck struct {
	ID         string    `json:"id" bson:"_id"`
	ClientName string    `json:"client_name" bson:"client_name"`
	Timestamp  time.Time `json:"timestamp" bson:"timestamp"`
}

// DashboardStats are the per-user counters shown on the portal home page.
type DashboardStats struct {
	TotalOrders     int64 `json:"total_orders"`
	ActiveOrders    int64 `json:"active_orders"`
	CompletedOrders int64 `json:"completed_orders"`
	UnreadMessages  int64 `json:"unread_messages"`
}
