package notes

import "github.com/gugan-zemuria/notes-app/internal/client/models"

// Built-in reference sets used when the backend cannot serve them. Matches
// the seed set users see on a fresh account.

func defaultCategories() []models.Category {
	return []models.Category{
		{ID: "1", Name: "Personal", Color: "#3B82F6", Icon: "👤"},
		{ID: "2", Name: "Work", Color: "#EF4444", Icon: "💼"},
		{ID: "3", Name: "Ideas", Color: "#8B5CF6", Icon: "💡"},
		{ID: "4", Name: "Tasks", Color: "#F59E0B", Icon: "✅"},
		{ID: "5", Name: "Projects", Color: "#10B981", Icon: "🚀"},
		{ID: "6", Name: "Learning", Color: "#F97316", Icon: "📚"},
		{ID: "7", Name: "Health", Color: "#EC4899", Icon: "🏥"},
		{ID: "8", Name: "Finance", Color: "#06B6D4", Icon: "💰"},
	}
}

func defaultLabels() []models.Label {
	return []models.Label{
		{ID: "1", Name: "Important", Color: "#EF4444"},
		{ID: "2", Name: "Urgent", Color: "#F59E0B"},
		{ID: "3", Name: "Review", Color: "#8B5CF6"},
		{ID: "4", Name: "Archive", Color: "#6B7280"},
		{ID: "5", Name: "Draft", Color: "#10B981"},
		{ID: "6", Name: "In Progress", Color: "#3B82F6"},
		{ID: "7", Name: "Completed", Color: "#059669"},
		{ID: "8", Name: "On Hold", Color: "#DC2626"},
	}
}
