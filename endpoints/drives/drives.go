package drives

import (
	"github.com/itchio/partizan/partitions"
	"github.com/itchio/partizan/partizand"
)

func Register(router *partizand.Router) {
	partizand.DrivesList.Register(router, DrivesListHandler)
	partizand.PartitionsList.Register(router, PartitionsListHandler)
}

func PartitionsListHandler(rc *partizand.RequestContext, params partizand.PartitionsListParams) (*partizand.PartitionsListResult, error) {
	parts, err := partitions.ListSystem()
	if err != nil {
		return nil, err
	}

	res := &partizand.PartitionsListResult{}
	for _, p := range parts {
		res.Partitions = append(res.Partitions, partizand.Partition{
			Letter:             string(p.Letter),
			DriveType:          p.DriveType.String(),
			Ready:              p.Ready,
			Name:               p.Name,
			FileSystem:         p.FileSystemName,
			Size:               p.Size,
			FreeSpace:          p.FreeSpace,
			SerialNumber:       p.VolumeSerialNumber,
			MaxComponentLength: p.MaxComponentLength,
			FileSystemFlags:    p.FileSystemFlags,
		})
	}
	return res, nil
}
