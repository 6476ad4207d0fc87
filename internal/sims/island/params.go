package island

import "watershed/internal/core"

// Parameters reports the map, hydrology and view settings for the viewer.
func (w *World) Parameters() core.ParameterSnapshot {
	m, h := w.cfg.Map, w.cfg.Hydro
	return core.ParameterSnapshot{Groups: []core.ParameterGroup{
		{
			Name: "Map",
			Params: []core.Parameter{
				core.IntParam("w", "Width", m.Width),
				core.IntParam("h", "Height", m.Height),
				core.Int64Param("seed", "Seed", m.Seed),
				core.StringParam("noise", "Noise", m.Noise),
				core.IntParam("octaves", "Octaves", m.Octaves),
			},
		},
		{
			Name: "Hydrology",
			Params: []core.Parameter{
				core.IntParam("radius", "Search radius", h.Radius),
				core.FloatParam("ocean", "Ocean level", h.OceanLevel),
				core.FloatParam("volume_threshold", "Lake volume threshold", h.VolumeThreshold),
				core.IntParam("min_area", "Lake min area", h.MinArea),
				core.StringParam("depth", "Lake depth", h.Depth),
				core.FloatParam("river_gamma", "River gamma", h.RiverGamma),
			},
		},
		{
			Name: "View",
			Params: []core.Parameter{
				core.StringParam("layer", "Layer", w.layer.String()),
			},
		},
	}}
}

// SetIntParameter updates an integer pipeline setting and reruns the pipeline.
func (w *World) SetIntParameter(key string, value int) bool {
	next := w.cfg.Hydro
	switch key {
	case "radius":
		next.Radius = value
	case "min_area":
		next.MinArea = value
	default:
		return false
	}
	return w.rerun(next)
}

// SetFloatParameter updates a floating point pipeline setting and reruns the
// pipeline.
func (w *World) SetFloatParameter(key string, value float64) bool {
	next := w.cfg.Hydro
	switch key {
	case "ocean":
		next.OceanLevel = value
	case "volume_threshold":
		next.VolumeThreshold = value
	case "river_gamma":
		next.RiverGamma = value
	default:
		return false
	}
	return w.rerun(next)
}
