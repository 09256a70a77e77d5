package model

// Environment is the deployment environment name from config.
type Environment string

const (
	EnvironmentDevelopment Environment = "development"
	EnvironmentStaging     Environment = "staging"
	EnvironmentProduction  Environment = "production"
)

// Collection names as they appear in routes and cache keys.
const (
	CollectionCategories = "categories"
	CollectionCoupons    = "coupons"
	CollectionRoomTypes  = "room-types"
	CollectionRooms      = "rooms"
	CollectionListings   = "listings"
)
