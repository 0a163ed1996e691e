package domain

type Genre struct {
	Name        string `json:"name" bson:"name"`
	Description string `json:"description" bson:"description"`
}

type Director struct {
	Name      string `json:"name" bson:"name"`
	Bio       string `json:"bio" bson:"bio"`
	BirthYear int    `json:"birth_year,omitempty" bson:"birth_year,omitempty"`
	DeathYear int    `json:"death_year,omitempty" bson:"death_year,omitempty"`
}

// Movie es propiedad del catálogo; aquí solo se referencia, nunca se duplica.
type Movie struct {
	ID          string   `json:"id" bson:"_id"`
	Title       string   `json:"title" bson:"title"`
	Description string   `json:"description,omitempty" bson:"description,omitempty"`
	Genre       Genre    `json:"genre" bson:"genre"`
	Director    Director `json:"director" bson:"director"`
	ImagePath   string   `json:"image_path,omitempty" bson:"image_path,omitempty"`
	Featured    bool     `json:"featured" bson:"featured"`
}
