package catalog

// Trending queries shown next to the chat.
var TrendingQueries = []string{
	"5-day adventure in Leh Ladakh",
	"Romantic week in Goa beaches",
	"Cultural tour of Rajasthan",
	"Spiritual journey to Varanasi",
	"Beach paradise in Andaman",
}

// Suggestions offered as quick replies once itineraries are shown.
var FollowUpSuggestions = []string{
	"Can you add more cultural experiences?",
	"What about food recommendations?",
	"Are there any adventure activities?",
}

// Goa returns the demo catalog of three five-day Goa itineraries.
func Goa() *Static {
	return NewStatic(goaItineraries)
}

var goaItineraries = []Itinerary{
	{
		Title:       "Cultural Explorer",
		TotalDays:   5,
		BudgetRange: "₹60,000-₹90,000",
		DayPlans: []DayPlan{
			{DayNumber: 1, Date: "Feb 15", Morning: "Visit Basilica of Bom Jesus and Se Cathedral", Afternoon: "Explore Old Goa heritage sites", Evening: "Sunset at Miramar Beach"},
			{DayNumber: 2, Date: "Feb 16", Morning: "Tour Fontainhas Latin Quarter", Afternoon: "Traditional Goan cooking class", Evening: "Attend Fado music performance"},
			{DayNumber: 3, Date: "Feb 17", Morning: "Visit Shantadurga Temple", Afternoon: "Spice plantation tour", Evening: "Local market shopping at Anjuna"},
			{DayNumber: 4, Date: "Feb 18", Morning: "Explore Chapora Fort", Afternoon: "Heritage walk through Panjim", Evening: "River cruise on Mandovi"},
			{DayNumber: 5, Date: "Feb 19", Morning: "Visit Cabo de Rama Fort", Afternoon: "Beach time at Palolem", Evening: "Farewell dinner with Goan cuisine"},
		},
	},
	{
		Title:       "Adventure Seeker",
		TotalDays:   5,
		BudgetRange: "₹75,000-₹1,10,000",
		DayPlans: []DayPlan{
			{DayNumber: 1, Date: "Feb 15", Morning: "Scuba diving at Grande Island", Afternoon: "Jet skiing at Calangute Beach", Evening: "Beach volleyball and bonfire"},
			{DayNumber: 2, Date: "Feb 16", Morning: "Parasailing at Candolim", Afternoon: "Kayaking in backwaters", Evening: "Night trek to Dudhsagar Falls base"},
			{DayNumber: 3, Date: "Feb 17", Morning: "Trek to Dudhsagar Waterfall", Afternoon: "Swimming at natural pools", Evening: "Wildlife spotting at Bhagwan Mahavir Sanctuary"},
			{DayNumber: 4, Date: "Feb 18", Morning: "White water rafting on Mhadei River", Afternoon: "Rock climbing and rappelling", Evening: "Beach camping at Agonda"},
			{DayNumber: 5, Date: "Feb 19", Morning: "Surfing lessons at Ashwem", Afternoon: "ATV ride through coastal trails", Evening: "Sunset cruise with dolphin spotting"},
		},
	},
	{
		Title:       "Relaxation Retreat",
		TotalDays:   5,
		BudgetRange: "₹90,000-₹1,35,000",
		DayPlans: []DayPlan{
			{DayNumber: 1, Date: "Feb 15", Morning: "Arrival and resort check-in", Afternoon: "Ayurvedic spa session", Evening: "Sunset yoga at beach"},
			{DayNumber: 2, Date: "Feb 16", Morning: "Meditation and pranayama", Afternoon: "Luxury spa treatments", Evening: "Private beach dinner"},
			{DayNumber: 3, Date: "Feb 17", Morning: "Sunrise beach walk", Afternoon: "Pool relaxation and massage", Evening: "Fine dining at beachfront restaurant"},
			{DayNumber: 4, Date: "Feb 18", Morning: "Couples spa therapy", Afternoon: "Private yacht cruise", Evening: "Wine tasting and live music"},
			{DayNumber: 5, Date: "Feb 19", Morning: "Farewell yoga session", Afternoon: "Leisurely beach time", Evening: "Candlelight dinner by the sea"},
		},
	},
}
