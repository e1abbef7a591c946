package domain

// Service represents a bookable service from the read-only catalog
type Service struct {
	ID              string
	Name            string
	Description     string
	DurationMinutes int
	Price           float64
}

// Professional represents a staff member customers can book
type Professional struct {
	ID          string
	Name        string
	Specialties []string
}
