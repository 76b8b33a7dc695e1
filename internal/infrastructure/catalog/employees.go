package catalog

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/lbruckner/palletsim/internal/domain/game"
	"github.com/lbruckner/palletsim/internal/domain/shared"
)

var lastNames = []string{
	"Schmidt", "Müller", "Schmitz", "Neumann", "Schneider", "Fischer",
	"Schulz", "Graf", "Klein", "Koch", "Weber", "Schäfer", "Lange",
	"Fuchs", "Meyer", "Becker", "Krüger", "Lehmann", "Bergmann",
	"Hartmann", "Peters", "Wolf", "Franz", "Baumann", "Schwarz",
	"Schröder", "Witte", "Janssen", "Meier", "Braun", "Richter",
	"Köhler", "Krieger", "Vogel", "Arndt", "Herzog", "König", "Winter",
	"Berger", "Weiss", "Hoffmann", "Bauer", "Krause", "Werner",
	"Schulze", "Kaiser", "Kraft", "Berg", "Neuhaus", "Rose", "Kiefer",
	"Yilmaz", "Witt", "Behrens", "Beckmann", "Göbel", "Funke", "Bock",
	"Sommer", "Reuter", "Rupp", "Herrmann", "Heinrich", "Buchholz",
	"Wagner", "Mayer", "Möller",
}

var femaleNames = []string{
	"Mia", "Hanna", "Leonie", "Lea", "Lena", "Anna", "Emma", "Marie",
	"Sarah", "Lara", "Laura", "Sophie", "Lina", "Nele", "Johanna",
	"Maja", "Alina", "Julia", "Clara", "Emilia", "Lisa", "Luisa",
	"Paula", "Jana", "Jasmin", "Pia", "Melina", "Finja", "Annika",
	"Stella", "Fiona", "Ida", "Antonia", "Jule", "Helena", "Nina",
	"Marlene", "Maria", "Greta", "Pauline", "Lotta", "Ronja", "Mara",
	"Luise", "Eva", "Theresa", "Elisa", "Merle", "Frieda", "Luna",
	"Carla", "Helene", "Nora", "Romy", "Ella", "Mira", "Linda", "Elena",
	"Milena", "Miriam",
}

var maleNames = []string{
	"Julian", "Philip", "Elias", "Niklas", "Noah", "Jan", "Moritz",
	"Tom", "Nico", "Simon", "Alexander", "Fabian", "David", "Eric",
	"Jacob", "Florian", "Nils", "Nick", "Linus", "Mika", "Jason",
	"Henri", "Justin", "Johannes", "Anton", "Rafael", "Sebastian",
	"Tobias", "Daniel", "Jonathan", "Hannes", "Julius", "Marlon",
	"Vincent", "Emil", "Benjamin", "Joel", "Timo", "Adrian", "Robin",
	"Till", "Leonard", "Aaron", "Marvin", "Leo", "Carl", "Oscar",
	"Samuel", "Joshua", "Kevin", "Marc", "Ole", "Lasse", "Kilian",
	"Silas", "John", "Justus", "Oliver", "Phil", "Dennis", "Johann",
	"Gabriel", "Liam", "Levin", "Theo", "Matteo", "Lars", "Pascal",
	"Bastian", "Michael", "Marcel", "Malte",
}

type staffSeed struct {
	female          bool
	qualification   int
	process         game.Process
	employmentRound int
}

// The opening staff matches the per-station head counts of the company
// balance sheet: 2 at goods-in, 4 in collection, 3 in storage, 2 at
// control, 1 at goods-out.
var staffSeeds = []staffSeed{
	{false, 1, game.ProcessUnloading, 1},
	{true, 0, game.ProcessUnloading, 4},
	{true, 0, game.ProcessCollection, 1},
	{false, 4, game.ProcessCollection, 2},
	{false, 0, game.ProcessCollection, 6},
	{true, 2, game.ProcessCollection, 8},
	{false, 3, game.ProcessStorage, 1},
	{true, 1, game.ProcessStorage, 3},
	{false, 1, game.ProcessStorage, 7},
	{true, 0, game.ProcessControl, 2},
	{false, 6, game.ProcessControl, 5},
	{false, 3, game.ProcessLoading, 1},
}

// Employees builds the opening staff
func Employees() []*game.EmployeeDynamic {
	staff := make([]*game.EmployeeDynamic, 0, len(staffSeeds))
	for i, seed := range staffSeeds {
		var first string
		if seed.female {
			first = femaleNames[i%len(femaleNames)]
		} else {
			first = maleNames[i%len(maleNames)]
		}
		emp := &game.Employee{
			ID:              uuid.NewString(),
			Name:            fmt.Sprintf("%s %s", first, lastNames[i%len(lastNames)]),
			Female:          seed.female,
			Age:             28 + (i*3)%22,
			EmploymentRound: seed.employmentRound,
			ContractType:    game.ContractFullTime,
			EndRound:        1000,
		}
		d := game.NewEmployeeDynamic(emp, seed.qualification)
		d.Process = seed.process
		staff = append(staff, d)
	}
	return staff
}

// NewApplicant generates a random applicant for the employee store
func NewApplicant(rng shared.Random) *game.EmployeeDynamic {
	female := rng.Intn(2) == 0
	var first string
	if female {
		first = femaleNames[rng.Intn(len(femaleNames))]
	} else {
		first = maleNames[rng.Intn(len(maleNames))]
	}
	emp := &game.Employee{
		ID:              uuid.NewString(),
		Name:            fmt.Sprintf("%s %s", first, lastNames[rng.Intn(len(lastNames))]),
		Female:          female,
		Age:             20 + rng.Intn(30),
		EmploymentRound: -1,
		ContractType:    game.ContractFullTime,
		EndRound:        1000,
	}
	return game.NewEmployeeDynamic(emp, rng.Intn(len(game.SalaryByQualification)))
}

// ApplicantPool hands out random applicants one by one, backed by a shared
// random source. It satisfies the round engine's applicant source.
type ApplicantPool struct {
	rng shared.Random
}

// NewApplicantPool creates an applicant pool over the given random source
func NewApplicantPool(rng shared.Random) *ApplicantPool {
	return &ApplicantPool{rng: rng}
}

// NextApplicant generates the next applicant
func (p *ApplicantPool) NextApplicant() *game.EmployeeDynamic {
	return NewApplicant(p.rng)
}

// Applicants fills a fresh employee store
func Applicants(rng shared.Random, count int) []*game.EmployeeDynamic {
	store := make([]*game.EmployeeDynamic, 0, count)
	for i := 0; i < count; i++ {
		store = append(store, NewApplicant(rng))
	}
	return store
}
