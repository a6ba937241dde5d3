package catalog

import "strings"

// Entry is one company in the built-in search catalog.
type Entry struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Website     string `json:"website"`
	Location    string `json:"location"`
	Industry    string `json:"industry"`
	Size        string `json:"size"`
	JobCount    int    `json:"jobCount"`
}

// Companies is the fixed catalog backing GET /companies/search. The search
// endpoint filters this list, not the caller's own company records.
var Companies = []Entry{
	{
		Name:        "Microsoft",
		Description: "Global technology company that develops software, consumer electronics, and computers.",
		Website:     "https://microsoft.com",
		Location:    "Redmond, WA",
		Industry:    "Technology",
		Size:        "10000+",
		JobCount:    150,
	},
	{
		Name:        "Apple",
		Description: "Technology company that designs and develops consumer electronics, software, and services.",
		Website:     "https://apple.com",
		Location:    "Cupertino, CA",
		Industry:    "Technology",
		Size:        "10000+",
		JobCount:    200,
	},
	{
		Name:        "Amazon",
		Description: "E-commerce and technology company focusing on e-commerce, cloud computing, and artificial intelligence.",
		Website:     "https://amazon.com",
		Location:    "Seattle, WA",
		Industry:    "Technology/Retail",
		Size:        "10000+",
		JobCount:    300,
	},
	{
		Name:        "Google",
		Description: "Technology company specializing in internet-related services and products.",
		Website:     "https://google.com",
		Location:    "Mountain View, CA",
		Industry:    "Technology",
		Size:        "10000+",
		JobCount:    250,
	},
	{
		Name:        "Meta",
		Description: "Technology company focusing on social networking, virtual reality, and metaverse technologies.",
		Website:     "https://meta.com",
		Location:    "Menlo Park, CA",
		Industry:    "Technology",
		Size:        "10000+",
		JobCount:    180,
	},
	{
		Name:        "Netflix",
		Description: "Streaming media and video-on-demand company.",
		Website:     "https://netflix.com",
		Location:    "Los Gatos, CA",
		Industry:    "Entertainment/Technology",
		Size:        "10000+",
		JobCount:    100,
	},
	{
		Name:        "Tesla",
		Description: "Electric vehicle and clean energy company.",
		Website:     "https://tesla.com",
		Location:    "Austin, TX",
		Industry:    "Automotive/Technology",
		Size:        "10000+",
		JobCount:    120,
	},
}

// Search filters the catalog by case-insensitive substring over name,
// description, industry and location.
func Search(query string) []Entry {
	q := strings.ToLower(strings.TrimSpace(query))
	results := make([]Entry, 0)
	for _, c := range Companies {
		if strings.Contains(strings.ToLower(c.Name), q) ||
			strings.Contains(strings.ToLower(c.Description), q) ||
			strings.Contains(strings.ToLower(c.Industry), q) ||
			strings.Contains(strings.ToLower(c.Location), q) {
			results = append(results, c)
		}
	}
	return results
}
