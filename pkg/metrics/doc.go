// Package metrics exposes Prometheus collectors for navkit.
//
// Metrics collected (default namespace "navkit"):
//   - navkit_location_listeners_active: Gauge of registered source listeners by source
//   - navkit_location_listener_acquisitions_total: Counter of 0->1 activations by source
//   - navkit_location_updates_total: Counter of republished locations by source
//   - navkit_link_clicks_total: Counter of intercepted clicks by decision
//   - navkit_link_click_errors_total: Counter of clicks whose href failed to resolve
//   - navkit_spa_requests_total: Counter of SPA server responses by kind
//
// All recording methods are safe on a nil *Collectors, so components can
// take metrics as an optional dependency.
package metrics
