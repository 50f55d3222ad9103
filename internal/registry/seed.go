package registry

import "github.com/mergington-high/activities/internal/model"

// DefaultCatalog returns the seed catalog the service starts with: nine
// activities, each with two initial participants. Callers get a fresh map on
// every call.
func DefaultCatalog() map[string]*model.Activity {
	return map[string]*model.Activity{
		"Soccer Team": {
			Description:     "Join our competitive soccer team and represent Mergington High",
			Schedule:        "Tuesdays and Thursdays, 4:00 PM - 6:00 PM",
			MaxParticipants: 25,
			Participants:    []string{"alex@mergington.edu", "james@mergington.edu"},
		},
		"Swimming Club": {
			Description:     "Improve your swimming technique and compete in swim meets",
			Schedule:        "Mondays and Wednesdays, 3:30 PM - 5:00 PM",
			MaxParticipants: 20,
			Participants:    []string{"sarah@mergington.edu", "lucas@mergington.edu"},
		},
		"Drama Club": {
			Description:     "Perform in school plays and develop your acting skills",
			Schedule:        "Thursdays, 3:30 PM - 5:30 PM",
			MaxParticipants: 30,
			Participants:    []string{"emily@mergington.edu", "david@mergington.edu"},
		},
		"Art Studio": {
			Description:     "Explore painting, drawing, and sculpture in our creative space",
			Schedule:        "Wednesdays, 3:00 PM - 5:00 PM",
			MaxParticipants: 15,
			Participants:    []string{"mia@mergington.edu", "noah@mergington.edu"},
		},
		"Debate Team": {
			Description:     "Develop critical thinking and public speaking through competitive debates",
			Schedule:        "Mondays, 3:30 PM - 5:00 PM",
			MaxParticipants: 16,
			Participants:    []string{"ava@mergington.edu", "ethan@mergington.edu"},
		},
		"Science Olympiad": {
			Description:     "Compete in science and engineering challenges at regional competitions",
			Schedule:        "Tuesdays, 3:30 PM - 5:00 PM",
			MaxParticipants: 15,
			Participants:    []string{"isabella@mergington.edu", "william@mergington.edu"},
		},
		"Chess Club": {
			Description:     "Learn strategies and compete in chess tournaments",
			Schedule:        "Fridays, 3:30 PM - 5:00 PM",
			MaxParticipants: 12,
			Participants:    []string{"michael@mergington.edu", "daniel@mergington.edu"},
		},
		"Programming Class": {
			Description:     "Learn programming fundamentals and build software projects",
			Schedule:        "Tuesdays and Thursdays, 3:30 PM - 4:30 PM",
			MaxParticipants: 20,
			Participants:    []string{"emma@mergington.edu", "sophia@mergington.edu"},
		},
		"Gym Class": {
			Description:     "Physical education and sports activities",
			Schedule:        "Mondays, Wednesdays, Fridays, 2:00 PM - 3:00 PM",
			MaxParticipants: 30,
			Participants:    []string{"john@mergington.edu", "olivia@mergington.edu"},
		},
	}
}
