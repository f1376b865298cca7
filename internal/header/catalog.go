package header

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Message keys.
const (
	KeyTour         = "nav.tour"
	KeyGallery      = "nav.gallery"
	KeyAbout        = "nav.about"
	KeyBook         = "book"
	KeyBookingTitle = "booking.title"
	KeyBookingBody  = "booking.body"
	KeySocialTitle  = "social.title"
)

var supported = []language.Tag{language.Spanish, language.English}

var matcher = language.NewMatcher(supported)

func init() {
	es := map[string]string{
		KeyTour:         "Tour",
		KeyGallery:      "Galería de Aventuras",
		KeyAbout:        "Acerca de",
		KeyBook:         "reservar",
		KeyBookingTitle: "Reservas",
		KeyBookingBody:  "Escríbenos por WhatsApp para reservar tu recorrido.",
		KeySocialTitle:  "Síguenos",
	}
	en := map[string]string{
		KeyTour:         "Tour",
		KeyGallery:      "Adventure Gallery",
		KeyAbout:        "About",
		KeyBook:         "book",
		KeyBookingTitle: "Bookings",
		KeyBookingBody:  "Message us on WhatsApp to book your ride.",
		KeySocialTitle:  "Follow us",
	}
	for k, v := range es {
		_ = message.SetString(language.Spanish, k, v)
	}
	for k, v := range en {
		_ = message.SetString(language.English, k, v)
	}
}

// Printer returns a printer for the closest supported language; Spanish
// when nothing matches.
func Printer(lang string) *message.Printer {
	tag, _ := language.MatchStrings(matcher, lang)
	base, _ := tag.Base()
	return message.NewPrinter(language.Make(base.String()))
}
