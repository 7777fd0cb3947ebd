package targetscope

import (
	"github.com/targetscope/targetscope/pkg/graph"
	"github.com/targetscope/targetscope/pkg/scoring"
	"github.com/targetscope/targetscope/pkg/types"
)

// Graph implements Service.
func (c *Client) Graph(filter graph.FilterSpec) (*types.Graph, error) {
	sess, err := c.active()
	if err != nil {
		return nil, err
	}
	return graph.Filter(sess.graph, filter), nil
}

// Opportunities implements Service.
func (c *Client) Opportunities(limit int) ([]types.Opportunity, []types.Warning, error) {
	sess, err := c.active()
	if err != nil {
		return nil, nil, err
	}
	opps, warnings := scoring.RankOpportunities(sess.snap, limit)
	return opps, warnings, nil
}

// Hubs implements Service.
func (c *Client) Hubs(minDegree int) ([]types.Hub, error) {
	sess, err := c.active()
	if err != nil {
		return nil, err
	}
	return scoring.FindHubs(sess.snap, minDegree), nil
}

// RepurposingCandidates implements Service.
func (c *Client) RepurposingCandidates(limit int) ([]types.RepurposingCandidate, []types.Warning, error) {
	sess, err := c.active()
	if err != nil {
		return nil, nil, err
	}
	candidates, warnings := scoring.FindRepurposingCandidates(sess.snap, limit)
	return candidates, warnings, nil
}

// DiseaseClusters implements Service.
func (c *Client) DiseaseClusters(minShared int) ([]types.DiseaseCluster, error) {
	sess, err := c.active()
	if err != nil {
		return nil, err
	}
	return scoring.DiseaseClusters(sess.snap, minShared), nil
}

// MultiIndicationProteins implements Service.
func (c *Client) MultiIndicationProteins(minIndications int) ([]types.MultiIndicationProtein, error) {
	sess, err := c.active()
	if err != nil {
		return nil, err
	}
	return scoring.MultiIndicationProteins(sess.snap, minIndications), nil
}

// Disease implements Service.
func (c *Client) Disease(id string) (*types.DiseaseDetail, error) {
	sess, err := c.active()
	if err != nil {
		return nil, err
	}
	d := sess.snap.Disease(id)
	if d == nil {
		return nil, types.ErrUnknownEntity
	}

	detail := &types.DiseaseDetail{Disease: d}
	for _, a := range sess.snap.AssociationsForDisease(id) {
		p := sess.snap.Protein(a.ProteinID)
		if p == nil {
			continue
		}
		detail.Associations = append(detail.Associations, types.AssociationWithProtein{
			Association: a,
			Protein:     p,
		})
	}
	return detail, nil
}

// Protein implements Service.
func (c *Client) Protein(id string) (*types.ProteinDetail, error) {
	sess, err := c.active()
	if err != nil {
		return nil, err
	}
	p := sess.snap.Protein(id)
	if p == nil {
		return nil, types.ErrUnknownEntity
	}

	detail := &types.ProteinDetail{
		Protein:   p,
		Therapies: sess.snap.TherapiesForProtein(id),
		Trials:    sess.snap.TrialsForProtein(id),
	}
	for _, a := range sess.snap.AssociationsForProtein(id) {
		d := sess.snap.Disease(a.DiseaseID)
		if d == nil {
			continue
		}
		detail.Diseases = append(detail.Diseases, types.AssociationWithDisease{
			Association: a,
			Disease:     d,
		})
	}
	return detail, nil
}
