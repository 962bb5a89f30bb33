package grid

import (
	"github.com/avc/cargo-office/internal/domain"
	"github.com/shopspring/decimal"
)

// derivedRule описывает вычисляемое поле и поля, от которых оно зависит
type derivedRule struct {
	target    Field
	dependsOn []Field
	apply     func(rec *domain.CargoRecord)
}

// derivedRules - таблица зависимостей вычисляемых полей
var derivedRules = []derivedRule{
	{
		target:    FieldTotal,
		dependsOn: []Field{FieldVolume, FieldCubicTariff, FieldFreightTariff, FieldInsurance, FieldPackaging},
		apply:     recomputeTotal,
	},
}

// rulesBySource: изменённое поле -> правила пересчета
var rulesBySource = indexRules(derivedRules)

func indexRules(rules []derivedRule) map[Field][]derivedRule {
	index := make(map[Field][]derivedRule)
	for _, rule := range rules {
		for _, f := range rule.dependsOn {
			index[f] = append(index[f], rule)
		}
	}
	return index
}

// isDerived сообщает, вычисляется ли поле по формуле
func isDerived(f Field) bool {
	for _, rule := range derivedRules {
		if rule.target == f {
			return true
		}
	}
	return false
}

// TriggersRecompute сообщает, вызывает ли правка поля пересчет строки
func TriggersRecompute(f Field) bool {
	return len(rulesBySource[f]) > 0
}

// AfterEdit пересчитывает поля строки, зависящие от изменённого поля.
// Возвращает true, если был выполнен пересчет.
func AfterEdit(rec *domain.CargoRecord, changed Field) bool {
	rules := rulesBySource[changed]
	for _, rule := range rules {
		rule.apply(rec)
	}
	return len(rules) > 0
}

// Recompute выполняет все правила для строки
func Recompute(rec *domain.CargoRecord) {
	for _, rule := range derivedRules {
		rule.apply(rec)
	}
}

// Total = объём * тариф куб + тариф фрахт + страховка + упаковка.
// Незаполненные значения считаются нулём.
func Total(volume, cubicTariff, freightTariff, insurance, packaging decimal.NullDecimal) decimal.Decimal {
	return orZero(volume).Mul(orZero(cubicTariff)).
		Add(orZero(freightTariff)).
		Add(orZero(insurance)).
		Add(orZero(packaging))
}

func recomputeTotal(rec *domain.CargoRecord) {
	rec.Total = decimal.NewNullDecimal(Total(rec.Volume, rec.CubicTariff, rec.FreightTariff, rec.Insurance, rec.Packaging))
}

func orZero(v decimal.NullDecimal) decimal.Decimal {
	if !v.Valid {
		return decimal.Zero
	}
	return v.Decimal
}
