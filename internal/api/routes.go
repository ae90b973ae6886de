package api

// route is a named mapping from logical endpoint to URL path
type route struct {
	name string
	path string
}

// routeTable is the fixed external contract of the service. Paths are
// exact-match and case-sensitive; the set never changes after startup.
var routeTable = []route{
	{"home", "/"},
	{"docs", "/docs"},
	{"about", "/about"},
	{"gp_ei", "/gp/ei"},
	{"gp_ei_pretty", "/gp/ei/pretty"},
	{"gp_mean_var", "/gp/mean_var"},
	{"gp_mean_var_pretty", "/gp/mean_var/pretty"},
	{"gp_next_points_epi", "/gp/next_points/epi"},
	{"gp_next_points_epi_pretty", "/gp/next_points/epi/pretty"},
}

// PathFor looks up the URL path registered under a logical route name
func PathFor(name string) (string, bool) {
	for _, rt := range routeTable {
		if rt.name == name {
			return rt.path, true
		}
	}
	return "", false
}
