package person

// Gender is a free-form label. The known values are listed as constants but
// nothing rejects other spellings.
type Gender string

const (
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
)

// Person is the only record kept by the directory.
type Person struct {
	ID     int    `json:"id" yaml:"id"`
	Name   string `json:"name" yaml:"name"`
	Age    int    `json:"age" yaml:"age"`
	Gender Gender `json:"gender" yaml:"gender"`
}

// Seed returns the built-in people, in the order lookups scan them.
func Seed() []Person {
	return []Person{
		{ID: 0, Name: "hojin", Age: 24, Gender: GenderMale},
		{ID: 1, Name: "Daal", Age: 18, Gender: GenderMale},
		{ID: 2, Name: "JD", Age: 20, Gender: GenderFemale},
		{ID: 3, Name: "flynn", Age: 19, Gender: GenderMale},
	}
}
