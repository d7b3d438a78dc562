package calculator

import (
	"errors"

	"github.com/montanaflynn/stats"

	"StockBoard/internal/model"
)

// SeriesAggregates holds the indicator readouts for a selected window:
// traded-volume extremes and mean, close-price extremes and mean.
type SeriesAggregates struct {
	VolumeMin  float64
	VolumeMax  float64
	VolumeMean float64
	CloseMin   float64
	CloseMax   float64
	CloseMean  float64
}

// ErrNoObservations reports a series with no usable (non-null) samples.
var ErrNoObservations = errors.New("no observations with valid close and volume")

// Aggregate computes min/max/mean over the volume and close columns of a
// series, skipping null values. Returns ErrNoObservations when either column
// has no valid sample.
func Aggregate(series model.TickerSeries) (SeriesAggregates, error) {
	closes := validColumn(series, func(b model.Bar) model.NullFloat { return b.Close })
	volumes := validColumn(series, func(b model.Bar) model.NullFloat { return b.Volume })
	if len(closes) == 0 || len(volumes) == 0 {
		return SeriesAggregates{}, ErrNoObservations
	}

	var agg SeriesAggregates
	var err error
	if agg.VolumeMin, err = stats.Min(volumes); err != nil {
		return SeriesAggregates{}, err
	}
	if agg.VolumeMax, err = stats.Max(volumes); err != nil {
		return SeriesAggregates{}, err
	}
	if agg.VolumeMean, err = stats.Mean(volumes); err != nil {
		return SeriesAggregates{}, err
	}
	if agg.CloseMin, err = stats.Min(closes); err != nil {
		return SeriesAggregates{}, err
	}
	if agg.CloseMax, err = stats.Max(closes); err != nil {
		return SeriesAggregates{}, err
	}
	if agg.CloseMean, err = stats.Mean(closes); err != nil {
		return SeriesAggregates{}, err
	}
	return agg, nil
}

func validColumn(series model.TickerSeries, pick func(model.Bar) model.NullFloat) []float64 {
	out := make([]float64, 0, len(series.Bars))
	for _, b := range series.Bars {
		if v := pick(b); v.Valid {
			out = append(out, v.Float64)
		}
	}
	return out
}
