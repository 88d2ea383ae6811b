package yamlanswers

// YAMLAnswers is the on-disk shape of answers.yaml:
//
//	answers:
//	  "01":
//	    part_one: "142"
//	    part_two: "281"
type YAMLAnswers struct {
	Answers map[string]YAMLDayAnswers `yaml:"answers"`
}

type YAMLDayAnswers struct {
	PartOne *string `yaml:"part_one"`
	PartTwo *string `yaml:"part_two"`
}
