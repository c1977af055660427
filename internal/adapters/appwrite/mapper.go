package appwrite

import (
	"restate-gateway/internal/core/domain"
	"strings"
)

func toDomainProperty(doc propertyDocument, resolveImage func(string) string) domain.Property {
	facilities := make([]domain.Facility, len(doc.Facilities))
	for i, f := range doc.Facilities {
		facilities[i] = domain.Facility(f)
	}

	image := doc.Image
	if resolveImage != nil && image != "" && !isAbsoluteURL(image) {
		image = resolveImage(image)
	}

	return domain.Property{
		ID:         doc.ID,
		Name:       doc.Name,
		Address:    doc.Address,
		Price:      doc.Price,
		Image:      image,
		Bedrooms:   doc.Bedrooms,
		Bathrooms:  doc.Bathrooms,
		Area:       doc.Area,
		Type:       domain.PropertyType(doc.Type),
		Rating:     doc.Rating,
		Facilities: facilities,
	}
}

func isAbsoluteURL(s string) bool {
	return strings.HasPrefix(s, "http://") || strings.HasPrefix(s, "https://")
}
