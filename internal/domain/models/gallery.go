package models

import "strings"

// Entry представляет собой одну запись галереи (фото + метаданные)
type Entry struct {
	ID          int64  `json:"id"`          // Идентификатор, назначается хранилищем
	Author      string `json:"author"`      // Автор фотографии
	Alt         string `json:"alt"`         // Альтернативный текст изображения
	Tags        string `json:"tags"`        // Теги через запятую
	Image       string `json:"image"`       // URL изображения
	Description string `json:"description"` // Описание
}

// EntryFields содержит пять пользовательских полей записи
type EntryFields struct {
	Author      string `json:"author" validate:"required"`
	Alt         string `json:"alt" validate:"required"`
	Tags        string `json:"tags" validate:"required"`
	Image       string `json:"image" validate:"required"`
	Description string `json:"description" validate:"required"`
}

// Field names in their canonical order.
const (
	FieldAuthor      = "author"
	FieldAlt         = "alt"
	FieldTags        = "tags"
	FieldImage       = "image"
	FieldDescription = "description"
)

var FieldNames = []string{FieldAuthor, FieldAlt, FieldTags, FieldImage, FieldDescription}

func (e Entry) Fields() EntryFields {
	return EntryFields{
		Author:      e.Author,
		Alt:         e.Alt,
		Tags:        e.Tags,
		Image:       e.Image,
		Description: e.Description,
	}
}

// Entry builds an entry with the given id.
func (f EntryFields) Entry(id int64) Entry {
	return Entry{
		ID:          id,
		Author:      f.Author,
		Alt:         f.Alt,
		Tags:        f.Tags,
		Image:       f.Image,
		Description: f.Description,
	}
}

// Values returns column -> value for every non-empty field.
func (f EntryFields) Values() map[string]string {
	values := make(map[string]string, len(FieldNames))
	for name, v := range map[string]string{
		FieldAuthor:      f.Author,
		FieldAlt:         f.Alt,
		FieldTags:        f.Tags,
		FieldImage:       f.Image,
		FieldDescription: f.Description,
	} {
		if v != "" {
			values[name] = v
		}
	}

	return values
}

// IsEmpty сообщает, что ни одно поле не заполнено
func (f EntryFields) IsEmpty() bool {
	return len(f.Values()) == 0
}

// TagList splits the comma-joined tags.
func (e Entry) TagList() []string {
	if e.Tags == "" {
		return nil
	}

	return strings.Split(e.Tags, ",")
}

// SeedEntries возвращает две записи, которыми заполняется пустая таблица
func SeedEntries() []EntryFields {
	return []EntryFields{
		{
			Author:      "Tim Berners-Lee",
			Alt:         "Image of Berners-Lee",
			Tags:        "html,http,url,cern,mit",
			Image:       "https://upload.wikimedia.org/wikipedia/commons/9/9d/Sir_Tim_Berners-Lee.jpg",
			Description: "The internet and the Web aren't the same thing.",
		},
		{
			Author:      "Grace Hopper",
			Alt:         "Image of Grace Hopper at the UNIVAC I console",
			Tags:        "programming,linking,navy",
			Image:       "https://upload.wikimedia.org/wikipedia/commons/3/37/Grace_Hopper_and_UNIVAC.jpg",
			Description: "Grace was very curious as a child; this was a lifelong trait. At the age of seven, she decided to determine how an alarm clock worked and dismantled seven alarm clocks before her mother realized what she was doing (she was then limited to one clock).",
		},
	}
}
