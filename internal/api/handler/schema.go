package handler

import (
	"time"

	"github.com/expotrade/client-portal/internal/core/domain"
)

// errorResponse is the standard error envelope returned on all 4xx/5xx responses.
type errorResponse struct {
	Error string `json:"error"`
}

type ackResponse struct {
	Message string `json:"message"`
}

// --- Auth & profile ---

type registerRequest struct {
	Name     string  `json:"name"     validate:"required,max=200"`
	Email    string  `json:"email"    validate:"required,email"`
	Company  string  `json:"company"  validate:"required,max=200"`
	Phone    *string `json:"phone"    validate:"omitempty,max=50"`
	Address  *string `json:"address"  validate:"omitempty,max=500"`
	Password string  `json:"password" validate:"required,max=72"`
}

type loginRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type tokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

type updateProfileRequest struct {
	Name    *string `json:"name"    validate:"omitempty,min=1,max=200"`
	Phone   *string `json:"phone"   validate:"omitempty,max=50"`
	Address *string `json:"address" validate:"omitempty,max=500"`
}

// userResponse never carries the password hash.
type userResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Company   string    `json:"company"`
	Phone     *string   `json:"phone"`
	Address   *string   `json:"address"`
	CreatedAt time.Time `json:"created_at"`
	IsActive  bool      `json:"is_active"`
}

// --- Orders ---

type createOrderRequest struct {
	ProductCategory    string  `json:"product_category"    validate:"required"`
	ProductDescription string  `json:"product_description" validate:"required"`
	Quantity           string  `json:"quantity"            validate:"required"`
	DestinationCountry string  `json:"destination_country" validate:"required"`
	Notes              *string `json:"notes"`
}

type updateOrderRequest struct {
	Status            *string    `json:"status"             validate:"omitempty,oneof=pending processing shipped delivered cancelled"`
	TrackingNumber    *string    `json:"tracking_number"`
	EstimatedDelivery *time.Time `json:"estimated_delivery"`
	Notes             *string    `json:"notes"`
	TotalAmount       *float64   `json:"total_amount"       validate:"omitempty,gte=0"`
}

// --- Documents ---

type uploadDocumentRequest struct {
	OrderID      string  `json:"order_id"      validate:"required"`
	DocumentType string  `json:"document_type" validate:"required,oneof=invoice packing_list shipping_docs certificate other"`
	Filename     string  `json:"filename"      validate:"required,max=255"`
	FileData     string  `json:"file_data"     validate:"required,base64"`
	FileSize     int64   `json:"file_size"     validate:"gte=0"`
	MimeType     string  `json:"mime_type"     validate:"required"`
	Description  *string `json:"description"`
}

// documentResponse is document metadata without the payload.
type documentResponse struct {
	ID           string              `json:"id"`
	OrderID      string              `json:"order_id"`
	DocumentType domain.DocumentType `json:"document_type"`
	Filename     string              `json:"filename"`
	FileSize     int64               `json:"file_size"`
	MimeType     string              `json:"mime_type"`
	UploadedAt   time.Time           `json:"uploaded_at"`
	Description  *string             `json:"description"`
}

type documentDownloadResponse struct {
	Filename string `json:"filename"`
	FileData string `json:"file_data"`
	MimeType string `json:"mime_type"`
}

// --- Messages ---

type sendMessageRequest struct {
	OrderID *string `json:"order_id" validate:"omitempty,min=1"`
	Subject string  `json:"subject"  validate:"required,max=300"`
	Content string  `json:"content"  validate:"required"`
}

type messageResponse struct {
	ID          string             `json:"id"`
	OrderID     *string            `json:"order_id"`
	MessageType domain.MessageType `json:"message_type"`
	Subject     string             `json:"subject"`
	Content     string             `json:"content"`
	CreatedAt   time.Time          `json:"created_at"`
	IsRead      bool               `json:"is_read"`
	RepliedTo   *string            `json:"replied_to"`
}

// --- Public forms ---

type contactRequest struct {
	Name    string  `json:"name"    validate:"required"`
	Email   string  `json:"email"   validate:"required,email"`
	Phone   *string `json:"phone"`
	Company *string `json:"company"`
	Message string  `json:"message" validate:"required"`
}

type quoteRequest struct {
	Name                string  `json:"name"                 validate:"required"`
	Company             string  `json:"company"              validate:"required"`
	Email               string  `json:"email"                validate:"required,email"`
	Phone               string  `json:"phone"                validate:"required"`
	ProductCategory     string  `json:"product_category"     validate:"required"`
	ProductDescription  string  `json:"product_description"  validate:"required"`
	DestinationCountry  string  `json:"destination_country"  validate:"required"`
	Quantity            string  `json:"quantity"             validate:"required"`
	MOQ                 *string `json:"moq"`
	Urgency             *string `json:"urgency"`
	SpecialInstructions *string `json:"special_instructions"`
}

type statusCheckRequest struct {
	ClientName string `json:"client_name" validate:"required"`
}
