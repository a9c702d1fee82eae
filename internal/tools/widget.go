package tools

import "context"

// widgetMarkup is the embeddable weather widget. The service returns it
// verbatim; the embedding page populates it by calling the get_weather tool.
const widgetMarkup = `<div class="weather-widget" data-tool="get_weather">
  <div class="weather-widget__location">Seattle, WA</div>
  <div class="weather-widget__reading">
    <span class="weather-widget__temp">--&deg;</span>
    <span class="weather-widget__condition">Loading&hellip;</span>
  </div>
  <div class="weather-widget__meta">
    <span class="weather-widget__wind">&mdash;</span>
    <span class="weather-widget__source">open-meteo</span>
  </div>
</div>`

func weatherWidgetHandler(ctx context.Context, args map[string]string) (any, error) {
	return widgetMarkup, nil
}
