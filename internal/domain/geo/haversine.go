// Package geo implementa el cálculo de distancia ortodrómica (haversine)
// usado por la búsqueda de bodegas cercanas.
package geo

import "math"

// EarthRadiusKm radio medio de la Tierra en kilómetros.
const EarthRadiusKm = 6371.0

// DistanceKm devuelve la distancia ortodrómica en km entre dos puntos (grados decimales),
// con la fórmula haversine:
//
//	d = 2R·asin( sqrt( sin²(Δlat/2) + cos(lat1)·cos(lat2)·sin²(Δlon/2) ) )
func DistanceKm(lat1, lon1, lat2, lon2 float64) float64 {
	dLat := radians(lat2 - lat1)
	dLon := radians(lon2 - lon1)

	a := math.Pow(math.Sin(dLat/2), 2) +
		math.Cos(radians(lat1))*math.Cos(radians(lat2))*math.Pow(math.Sin(dLon/2), 2)

	return EarthRadiusKm * 2 * math.Asin(math.Sqrt(a))
}

func radians(deg float64) float64 {
	return deg * math.Pi / 180
}
