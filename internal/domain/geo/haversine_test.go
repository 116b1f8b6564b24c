package geo_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jcalderon/inventario-movil/internal/domain/geo"
)

// Un punto contra sí mismo: distancia cero.
func TestDistanceKm_MismoPuntoEsCero(t *testing.T) {
	assert.Zero(t, geo.DistanceKm(4.60971, -74.08175, 4.60971, -74.08175))
}

// Punto muy cercano al origen: (0.0001°, 0.0001°) queda a ~0.0157 km de (0, 0).
func TestDistanceKm_PuntoCercanoAlOrigen(t *testing.T) {
	d := geo.DistanceKm(0, 0, 0.0001, 0.0001)
	assert.InDelta(t, 0.0157, d, 0.0005)
}

// Distancia conocida: Bogotá - Medellín ≈ 246 km en línea recta.
func TestDistanceKm_BogotaMedellin(t *testing.T) {
	d := geo.DistanceKm(4.60971, -74.08175, 6.25184, -75.56359)
	assert.InDelta(t, 246, d, 5)
}

// Simetría: d(a,b) == d(b,a).
func TestDistanceKm_Simetrica(t *testing.T) {
	a := geo.DistanceKm(4.6, -74.0, 10.9, -74.8)
	b := geo.DistanceKm(10.9, -74.8, 4.6, -74.0)
	assert.InDelta(t, a, b, 1e-9)
}

// Antípodas: la distancia máxima posible es π·R ≈ 20015 km.
func TestDistanceKm_Antipodas(t *testing.T) {
	d := geo.DistanceKm(0, 0, 0, 180)
	assert.InDelta(t, 20015.0, d, 1.0)
}
