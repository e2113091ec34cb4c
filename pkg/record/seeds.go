package record

// Seed collections written on first run when the backing store has no
// payload for the tasks or habits keys. Schedule tracks start empty.

func SeedTasks() []Task {
	return []Task{
		{ID: 1, Title: "Finish math homework", DueDate: "Today", Priority: PriorityHigh, FolderID: "school"},
		{ID: 2, Title: "Buy groceries", DueDate: "Tomorrow", Priority: PriorityLow, FolderID: "personal"},
		{ID: 3, Title: "Complete project proposal", DueDate: "This week", Priority: PriorityHigh, FolderID: "work"},
	}
}

func SeedHabits() []Habit {
	habits := []Habit{
		{ID: "1", Name: "Read 30 minutes", Icon: "book", Time: "8:00", Color: HabitColor{BG: "#E3F2FD", Text: "#1565C0"}},
		{ID: "2", Name: "Morning workout", Icon: "dumbbell", Time: "7:00", Color: HabitColor{BG: "#E8F5E9", Text: "#2E7D32"}},
		{ID: "3", Name: "Drink water", Icon: "droplet", Time: "12:00", Color: HabitColor{BG: "#E0F7FA", Text: "#00838F"}},
	}
	for i := range habits {
		habits[i].Normalize()
	}
	return habits
}
