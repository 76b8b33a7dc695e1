package game

import (
	"fmt"

	"github.com/google/uuid"
)

// Message is one narrative event shown to the player, carried in German and
// English. Messages are kept newest first.
type Message struct {
	ID     string `json:"id"`
	TextDE string `json:"text_de"`
	TextEN string `json:"text_en"`
	Round  int    `json:"round"`
}

// NewMessage creates a bilingual message for the given round
func NewMessage(textDE, textEN string, round int) *Message {
	return &Message{
		ID:     uuid.NewString(),
		TextDE: textDE,
		TextEN: textEN,
		Round:  round,
	}
}

func germanEmployeeArticle(female bool) string {
	if female {
		return "Die Mitarbeiterin"
	}
	return "Der Mitarbeiter"
}

// NewConveyorCriticalMessage reports a conveyor close to breaking down
func NewConveyorCriticalMessage(conveyorName string, round int) *Message {
	return NewMessage(
		fmt.Sprintf("Der technische Zustand des Fördermittels %s hat einen kritischen Wert erreicht.", conveyorName),
		fmt.Sprintf("The technical condition of the conveyor %s has reached a critical level.", conveyorName),
		round,
	)
}

// NewConveyorBreakdownMessage reports a conveyor that failed this round
func NewConveyorBreakdownMessage(conveyorName string, round int) *Message {
	return NewMessage(
		fmt.Sprintf("Das Fördermittel %s ist ausgefallen und musste repariert werden.", conveyorName),
		fmt.Sprintf("The conveyor %s is down and needs to be repaired.", conveyorName),
		round,
	)
}

// NewConveyorScrapMessage reports a conveyor that is gone for good
func NewConveyorScrapMessage(conveyorName string, round int) *Message {
	return NewMessage(
		fmt.Sprintf("Das Fördermittel %s ist endgültig ausgefallen. Es steht nun nicht mehr zur Verfügung.", conveyorName),
		fmt.Sprintf("The conveyor %s is down and is not available any longer.", conveyorName),
		round,
	)
}

// NewConveyorArrivalMessage reports the delivery of an ordered conveyor
func NewConveyorArrivalMessage(roundBought int, price float64, round int) *Message {
	return NewMessage(
		fmt.Sprintf("Ein in Runde %d bestelltes Fördermittel ist eingetroffen. Kosten: %v €", roundBought, price),
		fmt.Sprintf("In round %d a conveyor was ordered and it just arrived. Costs: %v € ", roundBought, price),
		round,
	)
}

// NewMotivationWarningMessage reports alarming overall motivation
func NewMotivationWarningMessage(round int) *Message {
	return NewMessage(
		"Die Motivation ihrer Mitarbeiter ist derzeit bedenklich.",
		"Employees motivation is currently alarming.",
		round,
	)
}

// NewInvalidContractMessage reports an employee with an unknown contract type
func NewInvalidContractMessage(emp *Employee, round int) *Message {
	return NewMessage(
		fmt.Sprintf("%s %s hat einen ungültigen Vertrag.", germanEmployeeArticle(emp.Female), emp.Name),
		fmt.Sprintf("The employee %s has an invalid contract.", emp.Name),
		round,
	)
}

// NewForkliftLicenseMessage reports a passed forklift exam
func NewForkliftLicenseMessage(emp *Employee, round int) *Message {
	return NewMessage(
		fmt.Sprintf("%s %s hat die Staplerschein-Prüfung erfolgreich bestanden.", germanEmployeeArticle(emp.Female), emp.Name),
		fmt.Sprintf("The employee %s passed the forklift drivers license successfully.", emp.Name),
		round,
	)
}

// NewQMSeminarMessage reports a passed quality management seminar
func NewQMSeminarMessage(emp *Employee, round int) *Message {
	return NewMessage(
		fmt.Sprintf(" %s %s hat das QM-Seminar erfolgreich absolviert.", germanEmployeeArticle(emp.Female), emp.Name),
		fmt.Sprintf("The employee %s passed the qm-seminar successfully.", emp.Name),
		round,
	)
}

// NewSecurityTrainingMessage reports passed safety training
func NewSecurityTrainingMessage(emp *Employee, round int) *Message {
	return NewMessage(
		fmt.Sprintf("%s %s hat das Sicherheitstraining erfolgreich absolviert.", germanEmployeeArticle(emp.Female), emp.Name),
		fmt.Sprintf("The employee  %s passed the safety training successfully.", emp.Name),
		round,
	)
}

// NewEmployeeLeavingMessage reports an employee leaving at the end of the
// round
func NewEmployeeLeavingMessage(emp *Employee, round int) *Message {
	return NewMessage(
		fmt.Sprintf("%s %s verlässt Ihr Unternehmen zum Ende dieser Runde.", germanEmployeeArticle(emp.Female), emp.Name),
		fmt.Sprintf("The employee %s is leaving your company at the end of this round.", emp.Name),
		round,
	)
}

// NewEmployeeStartingMessage reports a hire taking up work
func NewEmployeeStartingMessage(emp *Employee, round int) *Message {
	return NewMessage(
		fmt.Sprintf("%s %s beginnt in dieser Runde.", germanEmployeeArticle(emp.Female), emp.Name),
		fmt.Sprintf("The employee  %s beginns in this round.", emp.Name),
		round,
	)
}

// NewOrderArrivedMessage reports an arrived supply order in one of four
// variants depending on completeness and punctuality
func NewOrderArrivedMessage(order *Order, round int) *Message {
	delay := order.DeliveryRound - order.DeliveryWishRound
	missing := order.Quantity - order.DeliveredQuantity
	switch {
	case order.IsComplete() && order.IsLate():
		return NewMessage(
			fmt.Sprintf("Die Bestellung des Artikels %d ist vollständig mit %d Runden Verspätung eingetroffen.", order.ArticleNumber, delay),
			fmt.Sprintf("The order of article %d arrived completely with a delay of %d rounds.", order.ArticleNumber, delay),
			round,
		)
	case order.IsComplete():
		return NewMessage(
			fmt.Sprintf("Die Bestellung des Artikels %d ist vollständig und pünktlich eingetroffen.", order.ArticleNumber),
			fmt.Sprintf("The order of article %d fully arrived on time.", order.ArticleNumber),
			round,
		)
	case order.IsLate():
		return NewMessage(
			fmt.Sprintf("Die Bestellung des Artikels %d ist eingetroffen. Fehlende Paletten: %d. Verspätung: %d", order.ArticleNumber, missing, delay),
			fmt.Sprintf("The order of article %d arrived. Missing pallets: %d. Delay: %d", order.ArticleNumber, missing, delay),
			round,
		)
	default:
		return NewMessage(
			fmt.Sprintf("Die Bestellung des Artikels %d ist eingetroffen. Fehlende Paletten: %d", order.ArticleNumber, missing),
			fmt.Sprintf("The order of article %d arrived. Missing pallets: %d", order.ArticleNumber, missing),
			round,
		)
	}
}

// NewOutOfStockMessage reports an article with no pallets left in storage
func NewOutOfStockMessage(articleNumber, round int) *Message {
	return NewMessage(
		fmt.Sprintf("Der Artikel %d ist nicht mehr im Lager vorhanden.", articleNumber),
		fmt.Sprintf("The Article %d is out of stock.", articleNumber),
		round,
	)
}

// NewFinancialCriticalMessage reports entry into the critical state via the
// financial trigger
func NewFinancialCriticalMessage(round int) *Message {
	return NewMessage(
		"IHRE FINANZIELLE SITUATION IST KRITISCH GEWORDEN.",
		"YOUR FINANCIAL SITUATION HAS BECOME CRITICAL.",
		round,
	)
}

// NewFinancialStillCriticalMessage reminds of an ongoing financial crisis
func NewFinancialStillCriticalMessage(round int) *Message {
	return NewMessage(
		"IHRE FINANZIELLE SITUATION IST NACH WIE VOR KRITISCH.",
		"YOUR FINANCIAL SITUATION IS STILL CRITICAL.",
		round,
	)
}

// NewBankruptcyMessage reports the end of the game by bankruptcy
func NewBankruptcyMessage(round int) *Message {
	return NewMessage(
		"DAS SPIEL WURDE BEENDET, DA SIE KONKURS ANMELDEN MUSSTEN.",
		"THE GAME WAS STOPPED BECAUSE YOU HAD TO DECLARE BANKRUPTCY.",
		round,
	)
}

// NewSatisfactionCriticalMessage reports entry into the critical state via
// the customer satisfaction trigger
func NewSatisfactionCriticalMessage(round int) *Message {
	return NewMessage(
		"DIE KUNDENZUFRIEDENHEIT IST KRITISCH GEWORDEN.",
		"THE CUSTOMER SATISFACTION HAS BECOME CRITICAL.",
		round,
	)
}

// NewCustomersAlarmingMessage reminds of an ongoing customer crisis
func NewCustomersAlarmingMessage(round int) *Message {
	return NewMessage(
		"SIE HABEN KAUM NOCH KUNDEN.",
		"YOUR NUMBER OF CUSTOMERS IS ALARMING.",
		round,
	)
}

// NewNoCustomersMessage reports the end of the game by customer loss
func NewNoCustomersMessage(round int) *Message {
	return NewMessage(
		"DAS SPIEL WURDE BEENDET, DA SIE KEINE KUNDEN MEHR HABEN.",
		"THE GAME WAS STOPPED BECAUSE YOU DON'T HAVE CUSTOMERS ANYMORE.",
		round,
	)
}

// NewSituationImprovedMessage reports recovery from the critical state
func NewSituationImprovedMessage(round int) *Message {
	return NewMessage(
		"IHRE SITUATION HAT SICH WIEDER VERBESSERT.",
		"THE SITUATION HAS IMPROVED.",
		round,
	)
}
