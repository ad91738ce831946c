package timetable

import "lifeos/internal/model"

// defaultEntries is the fixed template day seeded into an empty store.
// IDs are derived from the time slot so seeded data is stable across
// installations. The 00:30 row is the template's next-day sleep slot; it
// sorts first because it has the smallest minutes-since-midnight value.
var defaultEntries = []model.TimetableEntry{
	{ID: "r_0830", Time: "08:30", Activity: "Wake up, morning routine"},
	{ID: "r_0900", Time: "09:00", Activity: "Breakfast"},
	{ID: "r_0930", Time: "09:30", Activity: "Deep work block 1"},
	{ID: "r_1130", Time: "11:30", Activity: "Short walk"},
	{ID: "r_1200", Time: "12:00", Activity: "Lunch"},
	{ID: "r_1300", Time: "13:00", Activity: "Deep work block 2"},
	{ID: "r_1500", Time: "15:00", Activity: "Coffee break"},
	{ID: "r_1530", Time: "15:30", Activity: "Study session"},
	{ID: "r_1630", Time: "16:30", Activity: "Email and admin"},
	{ID: "r_1730", Time: "17:30", Activity: "Exercise"},
	{ID: "r_1830", Time: "18:30", Activity: "Shower"},
	{ID: "r_1900", Time: "19:00", Activity: "Dinner"},
	{ID: "r_2000", Time: "20:00", Activity: "Free time"},
	{ID: "r_2100", Time: "21:00", Activity: "Reading"},
	{ID: "r_2200", Time: "22:00", Activity: "Journal, review of the day"},
	{ID: "r_2230", Time: "22:30", Activity: "Stretching"},
	{ID: "r_2300", Time: "23:00", Activity: "Wind-down, screens off"},
	{ID: "r_2320", Time: "23:20", Activity: "Prepare for bed"},
	{ID: "r_0030", Time: "00:30", Activity: "Sleep"},
}

// DefaultEntries returns a copy of the built-in template timetable,
// already in canonical form.
func DefaultEntries() Collection {
	return Normalize(defaultEntries)
}
