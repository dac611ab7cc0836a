package http

import "time"

// Error is the JSON body returned for every failed request.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// CreatedResponse carries the server-generated identifier of a new resource.
type CreatedResponse struct {
	ID string `json:"id"`
}

// CreateOrderRequest is the body of POST /api/v1/orders.
type CreateOrderRequest struct {
	BookID  string    `json:"book_id"`
	DueTime time.Time `json:"due_time"`
	Comment string    `json:"comment"`
}

// UpdateOrderRequest is the body of PUT /api/v1/orders/:id.
// Comment and DueTime are optional; omitted fields stay unchanged.
type UpdateOrderRequest struct {
	Status  string     `json:"status"`
	Comment *string    `json:"comment,omitempty"`
	DueTime *time.Time `json:"due_time,omitempty"`
}

// OrderResponse is one order in GET /api/v1/orders.
type OrderResponse struct {
	ID          string    `json:"id"`
	OwnerID     string    `json:"owner_id"`
	BookID      string    `json:"book_id"`
	BookTitle   string    `json:"book_title"`
	Status      string    `json:"status"`
	Comment     string    `json:"comment,omitempty"`
	CreatedTime time.Time `json:"created_time"`
	DueTime     time.Time `json:"due_time"`
}

// BookRequest is the body of POST /api/v1/books and PUT /api/v1/books/:id.
// CategoryID is ignored on update: a book cannot move between categories.
type BookRequest struct {
	Title             string  `json:"title"`
	Author            string  `json:"author"`
	Description       string  `json:"description"`
	CategoryID        string  `json:"category_id"`
	SubcategoryID     *string `json:"subcategory_id,omitempty"`
	Language          string  `json:"language"`
	EditionYear       string  `json:"edition_year"`
	InventoryNumber   string  `json:"inventory_number"`
	Quantity          int     `json:"quantity"`
	IsPossibleToOrder *bool   `json:"is_possible_to_order,omitempty"`
}

// BookResponse is the detailed book view of GET /api/v1/books/:id.
type BookResponse struct {
	ID                string    `json:"id"`
	Title             string    `json:"title"`
	Author            string    `json:"author"`
	Description       string    `json:"description,omitempty"`
	CategoryID        string    `json:"category_id"`
	SubcategoryID     *string   `json:"subcategory_id,omitempty"`
	Language          string    `json:"language,omitempty"`
	EditionYear       string    `json:"edition_year,omitempty"`
	InventoryNumber   string    `json:"inventory_number,omitempty"`
	Quantity          int       `json:"quantity"`
	IsPossibleToOrder bool      `json:"is_possible_to_order"`
	OrdersQuantity    int       `json:"orders_quantity"`
	Rating            float64   `json:"rating"`
	ReviewsQuantity   int       `json:"reviews_quantity"`
	CreatedTime       time.Time `json:"created_time"`
}

// BookListItem is one book in the GET /api/v1/books listing.
type BookListItem struct {
	ID                string    `json:"id"`
	Title             string    `json:"title"`
	Author            string    `json:"author"`
	Description       string    `json:"description,omitempty"`
	CategoryTitle     string    `json:"category_title"`
	Language          string    `json:"language,omitempty"`
	EditionYear       string    `json:"edition_year,omitempty"`
	Quantity          int       `json:"quantity"`
	IsPossibleToOrder bool      `json:"is_possible_to_order"`
	OrdersQuantity    int       `json:"orders_quantity"`
	Rating            float64   `json:"rating"`
	ReviewsQuantity   int       `json:"reviews_quantity"`
	CreatedTime       time.Time `json:"created_time"`
}

// CategoryRequest is the body of POST /api/v1/categories and
// POST /api/v1/categories/:id/subcategories.
type CategoryRequest struct {
	Title string `json:"title"`
}

// CategoryResponse is one category with its subcategories.
type CategoryResponse struct {
	ID            string                `json:"id"`
	Title         string                `json:"title"`
	Subcategories []SubcategoryResponse `json:"subcategories"`
}

// SubcategoryResponse is one subcategory in a category listing.
type SubcategoryResponse struct {
	ID    string `json:"id"`
	Title string `json:"title"`
}

// ReviewRequest is the body of POST /api/v1/books/:id/reviews.
type ReviewRequest struct {
	Text  string `json:"text"`
	Grade int    `json:"grade"`
}

// ReviewResponse is one review in GET /api/v1/books/:id/reviews.
type ReviewResponse struct {
	ID          string    `json:"id"`
	AuthorID    string    `json:"author_id"`
	AuthorName  string    `json:"author_name"`
	Text        string    `json:"text"`
	Grade       int       `json:"grade"`
	CreatedTime time.Time `json:"created_time"`
}
