package match

import "strings"

// Category is one of the canonical buckets raw interest tags map into.
type Category string

// Canonical interest categories.
const (
	CategoryEngineering Category = "Engineering"
	CategoryCSMath      Category = "CS/Math"
	CategoryBusiness    Category = "Business"
	CategoryArts        Category = "Arts/Humanities"
	CategorySciences    Category = "Sciences"
	CategoryHealth      Category = "Health"
)

// categoryOrder is the canonical iteration order for categories. Tie-breaks
// in program-type detection resolve to the first category in this order,
// so detection is reproducible regardless of map iteration.
var categoryOrder = []Category{
	CategoryEngineering,
	CategoryCSMath,
	CategoryBusiness,
	CategoryArts,
	CategorySciences,
	CategoryHealth,
}

// keywordMapping associates one lowercase keyword phrase with a category.
// Tables are ordered slices, not maps: lookup is substring containment
// with first-match-wins, and the declaration order below is the documented
// canonical order.
type keywordMapping struct {
	keyword  string
	category Category
}

// interestKeywords maps interest keywords to canonical interest categories.
var interestKeywords = []keywordMapping{
	// Engineering
	{"mechanical engineering", CategoryEngineering},
	{"civil engineering", CategoryEngineering},
	{"electrical engineering", CategoryEngineering},
	{"robotics", CategoryEngineering},
	{"mechatronics", CategoryEngineering},
	{"automotive", CategoryEngineering},
	{"aerospace", CategoryEngineering},
	{"structural design", CategoryEngineering},
	{"manufacturing", CategoryEngineering},
	{"product development", CategoryEngineering},
	{"engineering design", CategoryEngineering},

	// CS/Math
	{"programming", CategoryCSMath},
	{"software development", CategoryCSMath},
	{"algorithms", CategoryCSMath},
	{"data science", CategoryCSMath},
	{"mathematics", CategoryCSMath},
	{"statistics", CategoryCSMath},
	{"computer science", CategoryCSMath},
	{"web development", CategoryCSMath},
	{"artificial intelligence", CategoryCSMath},
	{"machine learning", CategoryCSMath},
	{"cryptography", CategoryCSMath},
	{"cybersecurity", CategoryCSMath},
	{"computational", CategoryCSMath},

	// Business
	{"finance", CategoryBusiness},
	{"marketing", CategoryBusiness},
	{"entrepreneurship", CategoryBusiness},
	{"economics", CategoryBusiness},
	{"accounting", CategoryBusiness},
	{"management", CategoryBusiness},
	{"business", CategoryBusiness},
	{"consulting", CategoryBusiness},
	{"human resources", CategoryBusiness},
	{"sales", CategoryBusiness},
	{"investment", CategoryBusiness},
	{"stock market", CategoryBusiness},
	{"taxation", CategoryBusiness},
	{"audit", CategoryBusiness},

	// Arts/Humanities
	{"literature", CategoryArts},
	{"philosophy", CategoryArts},
	{"history", CategoryArts},
	{"languages", CategoryArts},
	{"writing", CategoryArts},
	{"cultural studies", CategoryArts},
	{"art history", CategoryArts},
	{"music", CategoryArts},
	{"film", CategoryArts},
	{"theatre", CategoryArts},
	{"creative writing", CategoryArts},
	{"linguistics", CategoryArts},
	{"anthropology", CategoryArts},
	{"archaeology", CategoryArts},

	// Sciences
	{"biology", CategorySciences},
	{"chemistry", CategorySciences},
	{"physics", CategorySciences},
	{"environmental science", CategorySciences},
	{"astronomy", CategorySciences},
	{"earth sciences", CategorySciences},
	{"geology", CategorySciences},
	{"biochemistry", CategorySciences},
	{"molecular biology", CategorySciences},
	{"genetics", CategorySciences},
	{"ecology", CategorySciences},
	{"marine biology", CategorySciences},
	{"forensic science", CategorySciences},

	// Health
	{"medicine", CategoryHealth},
	{"nursing", CategoryHealth},
	{"kinesiology", CategoryHealth},
	{"public health", CategoryHealth},
	{"nutrition", CategoryHealth},
	{"psychology", CategoryHealth},
	{"healthcare", CategoryHealth},
	{"anatomy", CategoryHealth},
	{"physiology", CategoryHealth},
	{"pharmacy", CategoryHealth},
	{"biomedical", CategoryHealth},
	{"dentistry", CategoryHealth},
	{"therapy", CategoryHealth},
	{"mental health", CategoryHealth},
	{"psychiatry", CategoryHealth},
	{"rehabilitation", CategoryHealth},
}

// courseKeywords maps high-school course keywords to canonical course
// categories. Course categories are plain strings (they are display values,
// not interest categories).
var courseKeywords = []struct {
	keyword  string
	category string
}{
	{"calculus", "Math"},
	{"algebra", "Math"},
	{"statistics", "Math"},
	{"physics", "Physics"},
	{"biology", "Biology"},
	{"chemistry", "Chemistry"},
	{"computer programming", "Computer Science"},
	{"business studies", "Business"},
	{"economics", "Business"},
	{"english", "Language Arts"},
	{"literature", "Language Arts"},
	{"creative writing", "Language Arts"},
	{"history", "History"},
	{"geography", "Geography"},
	{"art", "Visual Arts"},
	{"visual arts", "Visual Arts"},
	{"design", "Visual Arts"},
	{"shop class", "Autoshop"},
	{"auto mechanics", "Autoshop"},
}

// CategoryDescriptions gives a short description of each interest category,
// for presentation layers.
var CategoryDescriptions = map[Category]string{
	CategoryEngineering: "Design and build physical systems and infrastructure",
	CategoryCSMath:      "Computing, programming, data analysis, and mathematics",
	CategoryBusiness:    "Finance, marketing, management, and entrepreneurship",
	CategoryArts:        "Creative writing, languages, philosophy, and cultural studies",
	CategorySciences:    "Natural sciences like biology, chemistry, physics",
	CategoryHealth:      "Healthcare, medicine, nursing, and wellness fields",
}

// MapInterest maps a normalized interest tag to its canonical category by
// substring containment, first table entry wins. Reports false when no
// keyword matches.
func MapInterest(normalizedTag string) (Category, bool) {
	if normalizedTag == "" {
		return "", false
	}
	for _, m := range interestKeywords {
		if strings.Contains(normalizedTag, m.keyword) {
			return m.category, true
		}
	}
	return "", false
}

// MapCourse maps a normalized course tag to its canonical course category
// by substring containment, first table entry wins. Reports false when no
// keyword matches.
func MapCourse(normalizedTag string) (string, bool) {
	if normalizedTag == "" {
		return "", false
	}
	for _, m := range courseKeywords {
		if strings.Contains(normalizedTag, m.keyword) {
			return m.category, true
		}
	}
	return "", false
}
