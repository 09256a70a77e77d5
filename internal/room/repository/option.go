package repository

type CreateRoomTypeOptions struct {
	ID          string
	BusinessID  string
	Name        string
	Description string
	BasePrice   float64
	Capacity    int
	ImageURL    string
	IsActive    bool
}

type GetOneRoomTypeOptions struct {
	BusinessID string
	ID         string
}

type ListRoomTypesOptions struct {
	BusinessID string
	ID         string
	Active     *bool
}

type UpdateRoomTypeOptions struct {
	BusinessID  string
	ID          string
	Name        string
	Description string
	BasePrice   float64
	Capacity    int
	ImageURL    string
	SortOrder   int
	IsActive    bool
}

type CreateRoomOptions struct {
	ID         string
	BusinessID string
	RoomTypeID string
	Number     string
	Floor      int
	Status     string
	IsActive   bool
}

// GetOneRoomOptions matches by ID or by Number within a business.
type GetOneRoomOptions struct {
	BusinessID string
	ID         string
	Number     string
}

type ListRoomsOptions struct {
	BusinessID string
	ID         string
	RoomTypeID string
	Active     *bool
}

type UpdateRoomOptions struct {
	BusinessID string
	ID         string
	RoomTypeID string
	Number     string
	Floor      int
	Status     string
	SortOrder  int
	IsActive   bool
}
