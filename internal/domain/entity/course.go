package entity

import "time"

// Course is an aggregate owning its embedded lectures.
type Course struct {
	ID               string    `bson:"_id,omitempty" json:"id"`
	Title            string    `bson:"title" json:"title"`
	Description      string    `bson:"description" json:"description"`
	Category         string    `bson:"category" json:"category"`
	CreatedBy        string    `bson:"created_by" json:"createdBy"`
	Thumbnail        *Asset    `bson:"thumbnail,omitempty" json:"thumbnail,omitempty"`
	Lectures         []Lecture `bson:"lectures,omitempty" json:"lectures,omitempty"`
	NumberOfLectures int       `bson:"number_of_lectures" json:"numberOfLectures"`
	CreatedAt        time.Time `bson:"created_at" json:"createdAt"`
	UpdatedAt        time.Time `bson:"updated_at" json:"updatedAt"`
}

// Lecture is a single video entry of a course.
type Lecture struct {
	ID          string `bson:"_id" json:"id"`
	Title       string `bson:"title" json:"title"`
	Description string `bson:"description" json:"description"`
	Video       Asset  `bson:"lecture" json:"lecture"`
}

// AddLecture appends l and keeps NumberOfLectures in sync.
func (c *Course) AddLecture(l Lecture) {
	c.Lectures = append(c.Lectures, l)
	c.NumberOfLectures = len(c.Lectures)
}

// LectureIndex returns the position of the lecture with the given id, or -1.
func (c *Course) LectureIndex(lectureID string) int {
	for i, l := range c.Lectures {
		if l.ID == lectureID {
			return i
		}
	}
	return -1
}

// RemoveLecture deletes the lecture at index i and keeps NumberOfLectures in sync.
func (c *Course) RemoveLecture(i int) Lecture {
	removed := c.Lectures[i]
	c.Lectures = append(c.Lectures[:i:i], c.Lectures[i+1:]...)
	c.NumberOfLectures = len(c.Lectures)
	return removed
}
