package carousel

// SlideID is the stable identifier used to bind a slide to its target.
type SlideID string

// Slide is one card of the carousel.
type Slide struct {
	ID      SlideID `yaml:"id"`
	Image   string  `yaml:"image"`
	Title   string  `yaml:"title"`
	Caption string  `yaml:"caption"`
}

// DefaultWheel is the backdrop asset used when a deck does not name one.
const DefaultWheel = "Llanta.png"

// DefaultSlides is the built-in deck.
func DefaultSlides() []Slide {
	return []Slide{
		{ID: "piscina-termal", Image: "021.jpg", Title: "Piscina Termal", Caption: "Recorrido dentro de nuestro bosque privado 1"},
		{ID: "bosque-privado", Image: "021.jpg", Title: "Bosque Privado", Caption: "Recorrido dentro de nuestro bosque privado 2"},
		{ID: "grupos-reducidos", Image: "021.jpg", Title: "Grupos Reducidos", Caption: "Recorrido dentro de nuestro bosque privado 3"},
		{ID: "experiencia-exclusiva", Image: "021.jpg", Title: "Experiencia Exclusiva", Caption: "Recorrido dentro de nuestro bosque privado 4"},
	}
}
