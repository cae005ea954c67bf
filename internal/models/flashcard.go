package models

type Flashcard struct {
	ID         string `bson:"_id,omitempty" json:"id"`
	MaterialID string `bson:"material_id" json:"material_id"`
	UserID     string `bson:"user_id" json:"user_id"`
	Front      string `bson:"front" json:"front"`
	Back       string `bson:"back" json:"back"`
	Category   string `bson:"category,omitempty" json:"category,omitempty"`
}
