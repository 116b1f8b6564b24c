package proximity

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jcalderon/inventario-movil/internal/application/dto"
	"github.com/jcalderon/inventario-movil/internal/domain"
	"github.com/jcalderon/inventario-movil/internal/domain/entity"
	"github.com/jcalderon/inventario-movil/internal/domain/repository"
)

// stubLocationRepo devuelve un set fijo de bodegas posicionadas y captura el
// filtro isMobile recibido.
type stubLocationRepo struct {
	positioned   []*entity.Location
	lastIsMobile *bool
}

func (s *stubLocationRepo) Create(context.Context, *entity.Location) error { return nil }
func (s *stubLocationRepo) ResolveRecID(context.Context, string) (string, error) {
	return "", nil
}
func (s *stubLocationRepo) UpdatePosition(context.Context, string, float64, float64, *float64, string) (bool, error) {
	return false, nil
}
func (s *stubLocationRepo) List(context.Context, repository.LocationFilter) ([]*entity.Location, int64, error) {
	return nil, 0, nil
}
func (s *stubLocationRepo) ListPositioned(_ context.Context, isMobile *bool) ([]*entity.Location, error) {
	s.lastIsMobile = isMobile
	return s.positioned, nil
}

func positionedLocation(id string, lat, lon float64) *entity.Location {
	return &entity.Location{
		RecID:      "rec-" + id,
		LocationID: id,
		Name:       "Bodega " + id,
		Active:     true,
		Latitude:   &lat,
		Longitude:  &lon,
	}
}

// Punto de referencia: centro de Bogotá.
const (
	bogotaLat = 4.60971
	bogotaLon = -74.08175
)

func f64(v float64) *float64 { return &v }

// Sin coordenadas no hay punto de consulta: se rechaza, no se busca en (0,0).
func TestFindNear_CoordenadasObligatorias(t *testing.T) {
	uc := NewNearbyUseCase(&stubLocationRepo{})

	cases := map[string]dto.NearQuery{
		"sin lat ni lon": {RadiusKm: 10, Limit: 10},
		"sin lon":        {Lat: f64(bogotaLat), RadiusKm: 10, Limit: 10},
		"sin lat":        {Lon: f64(bogotaLon), RadiusKm: 10, Limit: 10},
	}
	for name, q := range cases {
		_, err := uc.FindNear(context.Background(), q)
		assert.ErrorIs(t, err, domain.ErrInvalidInput, "caso: %s", name)
	}
}

func TestFindNear_OrdenAscendentePorDistancia(t *testing.T) {
	repo := &stubLocationRepo{positioned: []*entity.Location{
		positionedLocation("LEJOS", 4.70, -74.08),   // ~10 km
		positionedLocation("CERCA", 4.61, -74.082),  // decenas de metros
		positionedLocation("MEDIO", 4.65, -74.08),   // ~4.5 km
		positionedLocation("FUERA", 6.2442, -75.57), // Medellín, ~246 km
	}}
	uc := NewNearbyUseCase(repo)

	out, err := uc.FindNear(context.Background(), dto.NearQuery{
		Lat:      f64(bogotaLat),
		Lon:      f64(bogotaLon),
		RadiusKm: 50,
		Limit:    DefaultLimit,
	})
	require.NoError(t, err)
	require.Len(t, out, 3, "la bodega fuera del radio no aparece")
	assert.Equal(t, "CERCA", out[0].LocationID)
	assert.Equal(t, "MEDIO", out[1].LocationID)
	assert.Equal(t, "LEJOS", out[2].LocationID)
	assert.LessOrEqual(t, out[0].DistanceKm, out[1].DistanceKm)
	assert.LessOrEqual(t, out[1].DistanceKm, out[2].DistanceKm)
}

func TestFindNear_RadioInvalido(t *testing.T) {
	uc := NewNearbyUseCase(&stubLocationRepo{})

	for _, radius := range []float64{0, -1, 200.01, 1000} {
		_, err := uc.FindNear(context.Background(), dto.NearQuery{
			Lat: f64(bogotaLat), Lon: f64(bogotaLon), RadiusKm: radius, Limit: 10,
		})
		assert.ErrorIs(t, err, domain.ErrInvalidInput, "radiusKm=%v", radius)
	}
}

func TestFindNear_RadioMaximoExactoEsValido(t *testing.T) {
	uc := NewNearbyUseCase(&stubLocationRepo{})

	_, err := uc.FindNear(context.Background(), dto.NearQuery{
		Lat: f64(bogotaLat), Lon: f64(bogotaLon), RadiusKm: MaxRadiusKm, Limit: 10,
	})
	assert.NoError(t, err)
}

func TestFindNear_LimiteTruncaResultados(t *testing.T) {
	repo := &stubLocationRepo{positioned: []*entity.Location{
		positionedLocation("A", 4.610, -74.081),
		positionedLocation("B", 4.612, -74.081),
		positionedLocation("C", 4.614, -74.081),
		positionedLocation("D", 4.616, -74.081),
	}}
	uc := NewNearbyUseCase(repo)

	out, err := uc.FindNear(context.Background(), dto.NearQuery{
		Lat: f64(bogotaLat), Lon: f64(bogotaLon), RadiusKm: 10, Limit: 2,
	})
	require.NoError(t, err)
	require.Len(t, out, 2)
	// Quedan las dos más cercanas
	assert.Equal(t, "A", out[0].LocationID)
	assert.Equal(t, "B", out[1].LocationID)
}

func TestFindNear_LimiteFueraDeRangoSeAcota(t *testing.T) {
	repo := &stubLocationRepo{positioned: []*entity.Location{
		positionedLocation("A", 4.610, -74.081),
	}}
	uc := NewNearbyUseCase(repo)

	// Limit 0 se acota a 1, no es error.
	out, err := uc.FindNear(context.Background(), dto.NearQuery{
		Lat: f64(bogotaLat), Lon: f64(bogotaLon), RadiusKm: 10, Limit: 0,
	})
	require.NoError(t, err)
	assert.Len(t, out, 1)
}

func TestFindNear_PropagaFiltroIsMobile(t *testing.T) {
	repo := &stubLocationRepo{}
	uc := NewNearbyUseCase(repo)

	mobile := true
	_, err := uc.FindNear(context.Background(), dto.NearQuery{
		Lat: f64(bogotaLat), Lon: f64(bogotaLon), RadiusKm: 10, Limit: 10, IsMobile: &mobile,
	})
	require.NoError(t, err)
	require.NotNil(t, repo.lastIsMobile)
	assert.True(t, *repo.lastIsMobile)
}

func TestFindNear_SinBodegasPosicionadas(t *testing.T) {
	uc := NewNearbyUseCase(&stubLocationRepo{})

	out, err := uc.FindNear(context.Background(), dto.NearQuery{
		Lat: f64(bogotaLat), Lon: f64(bogotaLon), RadiusKm: 10, Limit: 10,
	})
	require.NoError(t, err)
	assert.Empty(t, out)
}
