package scraper

import (
	"errors"

	"drift-indexer-sol/internal/logic/domain"
	"drift-indexer-sol/internal/logic/driftv2"
	"drift-indexer-sol/internal/logic/locator"
	"drift-indexer-sol/internal/metrics"
	"drift-indexer-sol/internal/pkg/logger"
)

// DecodeTransaction 在整棵指令树中定位 programID 的指令并逐条解码。
// 解码失败的指令只记录日志与指标，不影响同一交易的其它指令。
func DecodeTransaction(tx *domain.ReadonlyTransaction, programID string) []*DecodedRecord {
	matches := locator.FindByProgramID(tx.Instructions, programID)
	if len(matches) == 0 {
		return nil
	}

	records := make([]*DecodedRecord, 0, len(matches))
	for i, ix := range matches {
		data, err := ix.RawData()
		if err != nil {
			metrics.DecodeFailures.WithLabelValues(metrics.ReasonBadData).Inc()
			logger.Warnf("[Scraper:Decode] Unknown instruction data: %v, tx=%s", err, tx.Signature)
			continue
		}

		decoded, err := driftv2.Decode(data)
		if err != nil {
			metrics.DecodeFailures.WithLabelValues(failureReason(err)).Inc()
			logger.Warnf("[Scraper:Decode] Unknown instruction data: %v, tx=%s", err, tx.Signature)
			continue
		}

		metrics.DecodedInstructions.WithLabelValues(decoded.Name()).Inc()
		logger.Infof("Signature %s has instruction: %s", tx.Signature, decoded.Name())

		records = append(records, &DecodedRecord{
			Signature:   tx.Signature,
			Slot:        tx.Slot,
			BlockTime:   tx.BlockTime,
			Position:    i,
			StackHeight: ix.StackHeight,
			Name:        decoded.Name(),
			Accounts:    ix.Accounts,
			Args:        decoded,
		})
	}
	return records
}

func failureReason(err error) string {
	if errors.Is(err, driftv2.ErrUnknownInstruction) {
		return metrics.ReasonUnknownInstruction
	}
	return metrics.ReasonInvalidEncoding
}
