package importer

import (
	"fmt"
	"net/url"
	"strings"
)

// ValidateSeed checks every project in the seed and returns all problems
// found, so a bad file can be fixed in one pass.
func ValidateSeed(seed *SeedFile) []error {
	var errs []error
	if len(seed.Projects) == 0 {
		errs = append(errs, fmt.Errorf("projects: at least one project is required"))
	}

	titles := make(map[string]int)
	for i, p := range seed.Projects {
		prefix := fmt.Sprintf("projects[%d]", i)

		title := strings.TrimSpace(p.Title)
		if title == "" {
			errs = append(errs, fmt.Errorf("%s.title is required", prefix))
		} else if first, dup := titles[strings.ToLower(title)]; dup {
			errs = append(errs, fmt.Errorf("%s.title %q duplicates projects[%d]", prefix, title, first))
		} else {
			titles[strings.ToLower(title)] = i
		}

		if p.Image != "" {
			if err := validateImageURL(p.Image); err != nil {
				errs = append(errs, fmt.Errorf("%s.image: %w", prefix, err))
			}
		}
	}
	return errs
}

func validateImageURL(raw string) error {
	u, err := url.Parse(raw)
	if err != nil {
		return fmt.Errorf("invalid url %q", raw)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("url %q must be http or https", raw)
	}
	if u.Host == "" {
		return fmt.Errorf("url %q has no host", raw)
	}
	return nil
}
