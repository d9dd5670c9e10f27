package sensor

import (
	"context"
	"fmt"
	"strings"

	"github.com/shirou/gopsutil/v4/sensors"

	"isolated_box/internal/models"
)

// HostSourceName labels samples read from host sensors.
const HostSourceName = "host"

// temperatures is swapped in tests.
var temperatures = sensors.TemperaturesWithContext

// Host reads a hardware temperature sensor through gopsutil. Key selects the
// sensor by case-insensitive substring; an empty key takes the first sensor
// with a positive reading.
type Host struct {
	Key string
}

func NewHost(key string) *Host { return &Host{Key: key} }

func (h *Host) Read(ctx context.Context) (models.SampleRecord, error) {
	stats, err := temperatures(ctx)
	if len(stats) == 0 {
		if err != nil {
			return models.SampleRecord{}, fmt.Errorf("read host sensors: %w", err)
		}
		return models.SampleRecord{}, ErrNoReading
	}
	// partial failures still carry usable stats

	key := strings.ToLower(strings.TrimSpace(h.Key))
	for _, st := range stats {
		if key != "" && !strings.Contains(strings.ToLower(st.SensorKey), key) {
			continue
		}
		if key == "" && st.Temperature <= 0 {
			continue
		}
		rec := models.NewSampleRecord(st.Temperature, "C")
		rec.Source = HostSourceName + ":" + st.SensorKey
		return rec, nil
	}
	return models.SampleRecord{}, fmt.Errorf("sensor %q: %w", h.Key, ErrNoReading)
}
