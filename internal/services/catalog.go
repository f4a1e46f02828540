package services

import (
	"github.com/rotisserie/eris"

	"areapulse/backend-go/internal/models"
)

var ErrNotFound = eris.New("not found")

func errAreaNotFound(code string) error {
	return eris.Wrapf(ErrNotFound, "area %q", code)
}

// Catalog is the static area registry and its co-indexed base metrics.
type Catalog struct {
	areas   []models.Area
	metrics map[string]models.BaseMetrics
	index   map[string]int
}

// NewCatalog rejects seeds where areas and metrics are not a one-to-one
// mapping on area code.
func NewCatalog(areas []models.Area, metrics map[string]models.BaseMetrics) (*Catalog, error) {
	c := &Catalog{
		areas:   make([]models.Area, 0, len(areas)),
		metrics: make(map[string]models.BaseMetrics, len(metrics)),
		index:   make(map[string]int, len(areas)),
	}
	for _, a := range areas {
		if a.Code == "" {
			return nil, eris.New("catalog: empty area code")
		}
		if _, dup := c.index[a.Code]; dup {
			return nil, eris.Errorf("catalog: duplicate area %q", a.Code)
		}
		m, ok := metrics[a.Code]
		if !ok {
			return nil, eris.Errorf("catalog: area %q has no metrics", a.Code)
		}
		c.index[a.Code] = len(c.areas)
		c.areas = append(c.areas, a)
		c.metrics[a.Code] = m
	}
	for code := range metrics {
		if _, ok := c.index[code]; !ok {
			return nil, eris.Errorf("catalog: metrics for unknown area %q", code)
		}
	}
	return c, nil
}

func DefaultCatalog() *Catalog {
	c, err := NewCatalog(seedAreas, seedMetrics)
	if err != nil {
		panic(err)
	}
	return c
}

func (c *Catalog) Get(code string) (models.AreaRecord, error) {
	i, ok := c.index[code]
	if !ok {
		return models.AreaRecord{}, errAreaNotFound(code)
	}
	a := c.areas[i]
	return models.AreaRecord{Area: a, Metrics: c.metrics[a.Code]}, nil
}

func (c *Catalog) List() []models.Area {
	out := make([]models.Area, len(c.areas))
	copy(out, c.areas)
	return out
}

func (c *Catalog) Codes() []string {
	out := make([]string, len(c.areas))
	for i, a := range c.areas {
		out[i] = a.Code
	}
	return out
}

func (c *Catalog) Len() int { return len(c.areas) }

var seedAreas = []models.Area{
	{Code: "E1", Name: "Whitechapel", Lat: 51.517, Lng: -0.059},
	{Code: "SE1", Name: "Southwark", Lat: 51.503, Lng: -0.091},
	{Code: "SW11", Name: "Battersea", Lat: 51.464, Lng: -0.163},
	{Code: "W2", Name: "Paddington", Lat: 51.515, Lng: -0.187},
	{Code: "NW3", Name: "Hampstead", Lat: 51.555, Lng: -0.175},
	{Code: "N1", Name: "Islington", Lat: 51.536, Lng: -0.103},
	{Code: "EC1", Name: "Clerkenwell", Lat: 51.524, Lng: -0.109},
	{Code: "WC2", Name: "Covent Garden", Lat: 51.512, Lng: -0.124},
}

var seedMetrics = map[string]models.BaseMetrics{
	"E1":   {Demand: 78, Competition: 55, HourlyRate: 98, ReviewScore: 4.5, CloseRatePct: 33, OnTimePct: 92, AvgJobValue: 520},
	"SE1":  {Demand: 73, Competition: 47, HourlyRate: 102, ReviewScore: 4.4, CloseRatePct: 31, OnTimePct: 93, AvgJobValue: 560},
	"SW11": {Demand: 80, Competition: 52, HourlyRate: 108, ReviewScore: 4.3, CloseRatePct: 28, OnTimePct: 94, AvgJobValue: 590},
	"W2":   {Demand: 68, Competition: 60, HourlyRate: 95, ReviewScore: 4.6, CloseRatePct: 34, OnTimePct: 91, AvgJobValue: 500},
	"NW3":  {Demand: 62, Competition: 42, HourlyRate: 110, ReviewScore: 4.2, CloseRatePct: 27, OnTimePct: 95, AvgJobValue: 640},
	"N1":   {Demand: 70, Competition: 58, HourlyRate: 97, ReviewScore: 4.5, CloseRatePct: 33, OnTimePct: 90, AvgJobValue: 510},
	"EC1":  {Demand: 65, Competition: 53, HourlyRate: 100, ReviewScore: 4.4, CloseRatePct: 30, OnTimePct: 92, AvgJobValue: 540},
	"WC2":  {Demand: 77, Competition: 45, HourlyRate: 112, ReviewScore: 4.3, CloseRatePct: 29, OnTimePct: 93, AvgJobValue: 610},
}
